package repository

import (
	"strings"

	"dinas_portal/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern that matches s literally anywhere in a column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func searchCond(search string, columns ...string) sq.Sqlizer {
	pattern := containsPattern(search)

	or := make(sq.Or, 0, len(columns))
	for _, col := range columns {
		or = append(or, sq.ILike{col: pattern})
	}

	return or
}

func beritaFilter(f models.ListFilter) sq.And {
	cond := sq.And{}

	if f.Search != "" {
		cond = append(cond, searchCond(f.Search, "title", "summary"))
	}
	if f.Published != nil {
		cond = append(cond, sq.Eq{"published": *f.Published})
	}

	return cond
}

func galeriFilter(f models.ListFilter) sq.And {
	cond := sq.And{}

	if f.Search != "" {
		cond = append(cond, searchCond(f.Search, "title", "description"))
	}
	if f.Published != nil {
		cond = append(cond, sq.Eq{"published": *f.Published})
	}
	if f.Type.Valid() {
		cond = append(cond, sq.Eq{"type": f.Type})
	}

	return cond
}

func laporanFilter(f models.ListFilter) sq.And {
	cond := sq.And{}

	if f.Search != "" {
		cond = append(cond, searchCond(f.Search, "nama", "email", "message"))
	}
	if f.Status.Valid() {
		cond = append(cond, sq.Eq{"status": f.Status})
	}

	return cond
}

// applyFilter adds cond to the query unless it is empty.
func applyFilter(b sq.SelectBuilder, cond sq.And) sq.SelectBuilder {
	if len(cond) == 0 {
		return b
	}
	return b.Where(cond)
}

func paginate(b sq.SelectBuilder, f models.ListFilter) sq.SelectBuilder {
	b = b.OrderBy("created_at DESC")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit)).Offset(uint64(f.Offset()))
	}
	return b
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

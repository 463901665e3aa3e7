package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultLimit       = 10
	DefaultGaleriLimit = 12
	AdminMaxLimit      = 100
)

// Params are the normalised page and limit of a list request.
type Params struct {
	Page  int
	Limit int
}

// Parse reads page and limit from raw query values. Missing, non-numeric or
// non-positive values fall back to page 1 and defLimit. A maxLimit of zero
// means no upper bound. Pages so large that the offset would overflow are
// clamped.
func Parse(rawPage, rawLimit string, defLimit, maxLimit int) Params {
	p := Params{Page: 1, Limit: defLimit}

	if v, err := strconv.Atoi(rawPage); err == nil && v >= 1 {
		p.Page = v
	}
	if v, err := strconv.Atoi(rawLimit); err == nil && v >= 1 {
		p.Limit = v
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	// keep (page-1)*limit inside int, a page past the end is just empty
	if p.Page-1 > math.MaxInt/p.Limit {
		p.Page = math.MaxInt/p.Limit + 1
	}

	return p
}

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func NewMeta(page, limit int, total int64) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

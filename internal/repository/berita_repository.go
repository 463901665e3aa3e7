package repository

import (
	"context"
	"errors"
	"fmt"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/storage"
	"dinas_portal/internal/storage/postgresql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	beritaTable          = "berita"
	beritaSlugConstraint = "berita_slug_key"
)

var beritaColumns = []string{
	"id", "title", "slug", "summary", "content", "image_url",
	"published", "views", "created_at", "updated_at",
}

type BeritaRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewBeritaRepository(db *pgxpool.Pool) *BeritaRepo {
	return &BeritaRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanBerita(row pgx.Row) (models.Berita, error) {
	var b models.Berita
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Slug,
		&b.Summary,
		&b.Content,
		&b.ImageURL,
		&b.Published,
		&b.Views,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

func (r *BeritaRepo) SaveBerita(ctx context.Context, b models.Berita) error {
	const op = "repository.berita_repository.SaveBerita"

	query, args, err := r.sb.Insert(beritaTable).
		Columns(beritaColumns...).
		Values(
			b.ID,
			b.Title,
			b.Slug,
			b.Summary,
			b.Content,
			b.ImageURL,
			b.Published,
			b.Views,
			b.CreatedAt,
			b.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		if postgresql.IsUniqueViolation(err, beritaSlugConstraint) {
			return fmt.Errorf("%s: %w", op, storage.ErrSlugExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateBerita writes the mutable columns of an already merged record. Slug and
// views are left alone.
func (r *BeritaRepo) UpdateBerita(ctx context.Context, b models.Berita) error {
	const op = "repository.berita_repository.UpdateBerita"

	query, args, err := r.sb.Update(beritaTable).
		Set("title", b.Title).
		Set("summary", b.Summary).
		Set("content", b.Content).
		Set("image_url", b.ImageURL).
		Set("published", b.Published).
		Set("updated_at", b.UpdatedAt).
		Where(sq.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *BeritaRepo) DeleteBerita(ctx context.Context, id uuid.UUID) error {
	const op = "repository.berita_repository.DeleteBerita"

	query, args, err := r.sb.Delete(beritaTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *BeritaRepo) GetBeritaByID(ctx context.Context, id uuid.UUID) (models.Berita, error) {
	const op = "repository.berita_repository.GetBeritaByID"

	query, args, err := r.sb.Select(beritaColumns...).
		From(beritaTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Berita{}, fmt.Errorf("%s: %w", op, err)
	}

	b, err := scanBerita(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Berita{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Berita{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (r *BeritaRepo) IncrementViews(ctx context.Context, slug string) (models.Berita, error) {
	const op = "repository.berita_repository.IncrementViews"

	query, args, err := r.sb.Update(beritaTable).
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"slug": slug, "published": true}).
		Suffix("RETURNING " + joinColumns(beritaColumns)).
		ToSql()
	if err != nil {
		return models.Berita{}, fmt.Errorf("%s: %w", op, err)
	}

	b, err := scanBerita(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Berita{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Berita{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (r *BeritaRepo) ListBerita(ctx context.Context, f models.ListFilter) ([]models.Berita, int64, error) {
	const op = "repository.berita_repository.ListBerita"

	cond := beritaFilter(f)

	total, err := r.count(ctx, cond)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := paginate(applyFilter(r.sb.Select(beritaColumns...).From(beritaTable), cond), f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.Berita, 0, f.Limit)
	for rows.Next() {
		b, err := scanBerita(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (r *BeritaRepo) count(ctx context.Context, cond sq.And) (int64, error) {
	query, args, err := applyFilter(r.sb.Select("COUNT(*)").From(beritaTable), cond).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error build query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error execute query: %w", err)
	}

	return total, nil
}

func (r *BeritaRepo) BeritaStats(ctx context.Context) (models.BeritaStats, error) {
	const op = "repository.berita_repository.BeritaStats"

	query, args, err := r.sb.Select("published", "COUNT(*)").
		From(beritaTable).
		GroupBy("published").
		ToSql()
	if err != nil {
		return models.BeritaStats{}, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return models.BeritaStats{}, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var stats models.BeritaStats
	for rows.Next() {
		var (
			published bool
			n         int64
		)
		if err := rows.Scan(&published, &n); err != nil {
			return models.BeritaStats{}, fmt.Errorf("%s: %w", op, err)
		}

		stats.Add(published, n)
	}

	return stats, rows.Err()
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const galeriTable = "galeri"

var galeriColumns = []string{
	"id", "title", "description", "image_url", "type", "published", "created_at", "updated_at",
}

type GaleriRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGaleriRepository(db *pgxpool.Pool) *GaleriRepo {
	return &GaleriRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanGaleri(row pgx.Row) (models.Galeri, error) {
	var g models.Galeri
	err := row.Scan(
		&g.ID,
		&g.Title,
		&g.Description,
		&g.ImageURL,
		&g.Type,
		&g.Published,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	return g, err
}

func (r *GaleriRepo) SaveGaleri(ctx context.Context, g models.Galeri) error {
	const op = "repository.galeri_repository.SaveGaleri"

	query, args, err := r.sb.Insert(galeriTable).
		Columns(galeriColumns...).
		Values(
			g.ID,
			g.Title,
			g.Description,
			g.ImageURL,
			g.Type,
			g.Published,
			g.CreatedAt,
			g.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *GaleriRepo) UpdateGaleri(ctx context.Context, g models.Galeri) error {
	const op = "repository.galeri_repository.UpdateGaleri"

	query, args, err := r.sb.Update(galeriTable).
		Set("title", g.Title).
		Set("description", g.Description).
		Set("image_url", g.ImageURL).
		Set("type", g.Type).
		Set("published", g.Published).
		Set("updated_at", g.UpdatedAt).
		Where(sq.Eq{"id": g.ID}).
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

func (r *GaleriRepo) DeleteGaleri(ctx context.Context, id uuid.UUID) error {
	const op = "repository.galeri_repository.DeleteGaleri"

	query, args, err := r.sb.Delete(galeriTable).Where(sq.Eq{"id": id}).ToSql()
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

func (r *GaleriRepo) GetGaleriByID(ctx context.Context, id uuid.UUID) (models.Galeri, error) {
	const op = "repository.galeri_repository.GetGaleriByID"

	query, args, err := r.sb.Select(galeriColumns...).
		From(galeriTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Galeri{}, fmt.Errorf("%s: %w", op, err)
	}

	g, err := scanGaleri(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Galeri{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Galeri{}, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}

func (r *GaleriRepo) ListGaleri(ctx context.Context, f models.ListFilter) ([]models.Galeri, int64, error) {
	const op = "repository.galeri_repository.ListGaleri"

	cond := galeriFilter(f)

	countQuery, countArgs, err := applyFilter(r.sb.Select("COUNT(*)").From(galeriTable), cond).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := paginate(applyFilter(r.sb.Select(galeriColumns...).From(galeriTable), cond), f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.Galeri, 0, f.Limit)
	for rows.Next() {
		g, err := scanGaleri(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (r *GaleriRepo) GaleriStats(ctx context.Context) (models.GaleriStats, error) {
	const op = "repository.galeri_repository.GaleriStats"

	query, args, err := r.sb.Select("published", "type", "COUNT(*)").
		From(galeriTable).
		GroupBy("published", "type").
		ToSql()
	if err != nil {
		return models.GaleriStats{}, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return models.GaleriStats{}, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var stats models.GaleriStats
	for rows.Next() {
		var (
			published bool
			typ       models.GaleriType
			n         int64
		)
		if err := rows.Scan(&published, &typ, &n); err != nil {
			return models.GaleriStats{}, fmt.Errorf("%s: %w", op, err)
		}
		stats.Add(published, typ, n)
	}

	return stats, rows.Err()
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const laporanTable = "laporan"

var laporanColumns = []string{
	"id", "nama", "email", "phone", "address", "message", "status", "created_at", "updated_at",
}

type LaporanRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewLaporanRepository(db *pgxpool.Pool) *LaporanRepo {
	return &LaporanRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanLaporan(row pgx.Row) (models.Laporan, error) {
	var l models.Laporan
	err := row.Scan(
		&l.ID,
		&l.Nama,
		&l.Email,
		&l.Phone,
		&l.Address,
		&l.Message,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

func (r *LaporanRepo) SaveLaporan(ctx context.Context, l models.Laporan) error {
	const op = "repository.laporan_repository.SaveLaporan"

	query, args, err := r.sb.Insert(laporanTable).
		Columns(laporanColumns...).
		Values(
			l.ID,
			l.Nama,
			l.Email,
			l.Phone,
			l.Address,
			l.Message,
			l.Status,
			l.CreatedAt,
			l.UpdatedAt,
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

func (r *LaporanRepo) UpdateLaporanStatus(ctx context.Context, id uuid.UUID, status models.LaporanStatus, updatedAt time.Time) error {
	const op = "repository.laporan_repository.UpdateLaporanStatus"

	query, args, err := r.sb.Update(laporanTable).
		Set("status", status).
		Set("updated_at", updatedAt).
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

func (r *LaporanRepo) DeleteLaporan(ctx context.Context, id uuid.UUID) error {
	const op = "repository.laporan_repository.DeleteLaporan"

	query, args, err := r.sb.Delete(laporanTable).Where(sq.Eq{"id": id}).ToSql()
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

func (r *LaporanRepo) GetLaporanByID(ctx context.Context, id uuid.UUID) (models.Laporan, error) {
	const op = "repository.laporan_repository.GetLaporanByID"

	query, args, err := r.sb.Select(laporanColumns...).
		From(laporanTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Laporan{}, fmt.Errorf("%s: %w", op, err)
	}

	l, err := scanLaporan(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Laporan{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Laporan{}, fmt.Errorf("%s: %w", op, err)
	}

	return l, nil
}

func (r *LaporanRepo) ListLaporan(ctx context.Context, f models.ListFilter) ([]models.Laporan, int64, error) {
	const op = "repository.laporan_repository.ListLaporan"

	cond := laporanFilter(f)

	countQuery, countArgs, err := applyFilter(r.sb.Select("COUNT(*)").From(laporanTable), cond).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := paginate(applyFilter(r.sb.Select(laporanColumns...).From(laporanTable), cond), f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.Laporan, 0, f.Limit)
	for rows.Next() {
		l, err := scanLaporan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (r *LaporanRepo) LaporanStats(ctx context.Context) (models.LaporanStats, error) {
	const op = "repository.laporan_repository.LaporanStats"

	query, args, err := r.sb.Select("status", "COUNT(*)").
		From(laporanTable).
		GroupBy("status").
		ToSql()
	if err != nil {
		return models.LaporanStats{}, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return models.LaporanStats{}, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var stats models.LaporanStats
	for rows.Next() {
		var (
			status models.LaporanStatus
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return models.LaporanStats{}, fmt.Errorf("%s: %w", op, err)
		}
		stats.Add(status, n)
	}

	return stats, rows.Err()
}

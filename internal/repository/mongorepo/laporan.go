package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/storage"
	"dinas_portal/internal/storage/mongodb"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type LaporanRepo struct {
	coll *mongo.Collection
}

func NewLaporanRepository(db *mongo.Database) *LaporanRepo {
	return &LaporanRepo{coll: db.Collection(mongodb.LaporanCollection)}
}

func (r *LaporanRepo) SaveLaporan(ctx context.Context, l models.Laporan) error {
	const op = "repository.mongorepo.LaporanRepo.SaveLaporan"

	if _, err := r.coll.InsertOne(ctx, l); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *LaporanRepo) UpdateLaporanStatus(ctx context.Context, id uuid.UUID, status models.LaporanStatus, updatedAt time.Time) error {
	const op = "repository.mongorepo.LaporanRepo.UpdateLaporanStatus"

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": updatedAt,
	}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *LaporanRepo) DeleteLaporan(ctx context.Context, id uuid.UUID) error {
	const op = "repository.mongorepo.LaporanRepo.DeleteLaporan"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *LaporanRepo) GetLaporanByID(ctx context.Context, id uuid.UUID) (models.Laporan, error) {
	const op = "repository.mongorepo.LaporanRepo.GetLaporanByID"

	var l models.Laporan
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Laporan{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Laporan{}, fmt.Errorf("%s: %w", op, err)
	}

	return l, nil
}

func (r *LaporanRepo) ListLaporan(ctx context.Context, f models.ListFilter) ([]models.Laporan, int64, error) {
	const op = "repository.mongorepo.LaporanRepo.ListLaporan"

	filter := laporanFilter(f)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	cur, err := r.coll.Find(ctx, filter, findOptions(f))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]models.Laporan, 0, f.Limit)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (r *LaporanRepo) LaporanStats(ctx context.Context) (models.LaporanStats, error) {
	const op = "repository.mongorepo.LaporanRepo.LaporanStats"

	cur, err := r.coll.Aggregate(ctx, groupPipeline("status"))
	if err != nil {
		return models.LaporanStats{}, fmt.Errorf("%s: %w", op, err)
	}

	var groups []groupCount
	if err := cur.All(ctx, &groups); err != nil {
		return models.LaporanStats{}, fmt.Errorf("%s: %w", op, err)
	}

	var stats models.LaporanStats
	for _, g := range groups {
		status, _ := g.ID["status"].(string)
		stats.Add(models.LaporanStatus(status), g.Count)
	}

	return stats, nil
}

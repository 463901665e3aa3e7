package mongorepo

import (
	"context"
	"errors"
	"fmt"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/storage"
	"dinas_portal/internal/storage/mongodb"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BeritaRepo struct {
	coll *mongo.Collection
}

func NewBeritaRepository(db *mongo.Database) *BeritaRepo {
	return &BeritaRepo{coll: db.Collection(mongodb.BeritaCollection)}
}

func (r *BeritaRepo) SaveBerita(ctx context.Context, b models.Berita) error {
	const op = "repository.mongorepo.BeritaRepo.SaveBerita"

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrSlugExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *BeritaRepo) UpdateBerita(ctx context.Context, b models.Berita) error {
	const op = "repository.mongorepo.BeritaRepo.UpdateBerita"

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": b.ID}, bson.M{"$set": bson.M{
		"title":     b.Title,
		"summary":   b.Summary,
		"content":   b.Content,
		"imageUrl":  b.ImageURL,
		"published": b.Published,
		"updatedAt": b.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *BeritaRepo) DeleteBerita(ctx context.Context, id uuid.UUID) error {
	const op = "repository.mongorepo.BeritaRepo.DeleteBerita"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *BeritaRepo) GetBeritaByID(ctx context.Context, id uuid.UUID) (models.Berita, error) {
	const op = "repository.mongorepo.BeritaRepo.GetBeritaByID"

	var b models.Berita
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Berita{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Berita{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (r *BeritaRepo) IncrementViews(ctx context.Context, slug string) (models.Berita, error) {
	const op = "repository.mongorepo.BeritaRepo.IncrementViews"

	var b models.Berita
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"slug": slug, "published": true},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Berita{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Berita{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (r *BeritaRepo) ListBerita(ctx context.Context, f models.ListFilter) ([]models.Berita, int64, error) {
	const op = "repository.mongorepo.BeritaRepo.ListBerita"

	filter := beritaFilter(f)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	cur, err := r.coll.Find(ctx, filter, findOptions(f))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]models.Berita, 0, f.Limit)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (r *BeritaRepo) BeritaStats(ctx context.Context) (models.BeritaStats, error) {
	const op = "repository.mongorepo.BeritaRepo.BeritaStats"

	cur, err := r.coll.Aggregate(ctx, groupPipeline("published"))
	if err != nil {
		return models.BeritaStats{}, fmt.Errorf("%s: %w", op, err)
	}

	var groups []groupCount
	if err := cur.All(ctx, &groups); err != nil {
		return models.BeritaStats{}, fmt.Errorf("%s: %w", op, err)
	}

	var stats models.BeritaStats
	for _, g := range groups {
		published, _ := g.ID["published"].(bool)
		stats.Add(published, g.Count)
	}

	return stats, nil
}

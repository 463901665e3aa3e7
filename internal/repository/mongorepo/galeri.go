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
)

type GaleriRepo struct {
	coll *mongo.Collection
}

func NewGaleriRepository(db *mongo.Database) *GaleriRepo {
	return &GaleriRepo{coll: db.Collection(mongodb.GaleriCollection)}
}

func (r *GaleriRepo) SaveGaleri(ctx context.Context, g models.Galeri) error {
	const op = "repository.mongorepo.GaleriRepo.SaveGaleri"

	if _, err := r.coll.InsertOne(ctx, g); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *GaleriRepo) UpdateGaleri(ctx context.Context, g models.Galeri) error {
	const op = "repository.mongorepo.GaleriRepo.UpdateGaleri"

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": g.ID}, bson.M{"$set": bson.M{
		"title":       g.Title,
		"description": g.Description,
		"imageUrl":    g.ImageURL,
		"type":        g.Type,
		"published":   g.Published,
		"updatedAt":   g.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *GaleriRepo) DeleteGaleri(ctx context.Context, id uuid.UUID) error {
	const op = "repository.mongorepo.GaleriRepo.DeleteGaleri"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *GaleriRepo) GetGaleriByID(ctx context.Context, id uuid.UUID) (models.Galeri, error) {
	const op = "repository.mongorepo.GaleriRepo.GetGaleriByID"

	var g models.Galeri
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Galeri{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Galeri{}, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}

func (r *GaleriRepo) ListGaleri(ctx context.Context, f models.ListFilter) ([]models.Galeri, int64, error) {
	const op = "repository.mongorepo.GaleriRepo.ListGaleri"

	filter := galeriFilter(f)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	cur, err := r.coll.Find(ctx, filter, findOptions(f))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]models.Galeri, 0, f.Limit)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (r *GaleriRepo) GaleriStats(ctx context.Context) (models.GaleriStats, error) {
	const op = "repository.mongorepo.GaleriRepo.GaleriStats"

	cur, err := r.coll.Aggregate(ctx, groupPipeline("published", "type"))
	if err != nil {
		return models.GaleriStats{}, fmt.Errorf("%s: %w", op, err)
	}

	var groups []groupCount
	if err := cur.All(ctx, &groups); err != nil {
		return models.GaleriStats{}, fmt.Errorf("%s: %w", op, err)
	}

	var stats models.GaleriStats
	for _, g := range groups {
		published, _ := g.ID["published"].(bool)
		typ, _ := g.ID["type"].(string)
		stats.Add(published, models.GaleriType(typ), g.Count)
	}

	return stats, nil
}

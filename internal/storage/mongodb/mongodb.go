package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection   = "users"
	BeritaCollection  = "berita"
	GaleriCollection  = "galeri"
	LaporanCollection = "laporan"
)

const connectTimeout = 10 * time.Second

type Storage struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(ctx context.Context, uri, dbName string, maxPoolSize uint64) (*Storage, error) {
	const op = "storage.mongodb.New"

	opts := options.Client().
		ApplyURI(uri).
		SetRegistry(Registry())
	if maxPoolSize > 0 {
		opts.SetMaxPoolSize(maxPoolSize)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (s *Storage) Database() *mongo.Database {
	return s.db
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Storage) Stop(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes every collection relies on. CreateMany is
// idempotent for identical definitions.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	const op = "storage.mongodb.EnsureIndexes"

	for coll, models := range Indexes() {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("%s: %s: %w", op, coll, err)
		}
	}

	return nil
}

// Indexes lists the index definitions per collection.
func Indexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("username_unique")},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
		},
		BeritaCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true).SetName("slug_unique")},
			{Keys: bson.D{{Key: "published", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("published_created")},
			{
				Keys:    bson.D{{Key: "title", Value: "text"}, {Key: "summary", Value: "text"}, {Key: "content", Value: "text"}},
				Options: options.Index().SetName("berita_text"),
			},
		},
		GaleriCollection: {
			{Keys: bson.D{{Key: "published", Value: 1}, {Key: "type", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("published_type_created")},
			{
				Keys:    bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}},
				Options: options.Index().SetName("galeri_text"),
			},
		},
		LaporanCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("status_created")},
		},
	}
}

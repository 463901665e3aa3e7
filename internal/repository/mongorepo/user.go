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

type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(mongodb.UsersCollection)}
}

func (r *UserRepo) SaveUser(ctx context.Context, user models.User) error {
	const op = "repository.mongorepo.UserRepo.SaveUser"

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *UserRepo) UserByUsername(ctx context.Context, username string) (models.User, error) {
	const op = "repository.mongorepo.UserRepo.UserByUsername"

	return r.userBy(ctx, op, bson.M{"username": username})
}

func (r *UserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	const op = "repository.mongorepo.UserRepo.GetUserByID"

	return r.userBy(ctx, op, bson.M{"_id": userID})
}

func (r *UserRepo) userBy(ctx context.Context, op string, filter bson.M) (models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

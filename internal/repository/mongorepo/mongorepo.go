// Package mongorepo implements the repository ports on top of MongoDB.
package mongorepo

import (
	"dinas_portal/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

func NewRepository(db *mongo.Database) *repository.Repository {
	return &repository.Repository{
		User:    NewUserRepository(db),
		Berita:  NewBeritaRepository(db),
		Galeri:  NewGaleriRepository(db),
		Laporan: NewLaporanRepository(db),
	}
}

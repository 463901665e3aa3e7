package repository

import (
	"github.com/jackc/pgx/v4/pgxpool"
)

// Repository groups the persistence ports used by the services. Both the
// postgres and the mongo backends fill it.
type Repository struct {
	User    UserRepository
	Berita  BeritaRepository
	Galeri  GaleriRepository
	Laporan LaporanRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Berita:  NewBeritaRepository(db),
		Galeri:  NewGaleriRepository(db),
		Laporan: NewLaporanRepository(db),
	}
}

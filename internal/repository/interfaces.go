package repository

import (
	"context"
	"time"

	"dinas_portal/internal/domain/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) error
	UserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
}

// TokenRepository keeps the ids of revoked access tokens until they expire.
type TokenRepository interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type BeritaRepository interface {
	SaveBerita(ctx context.Context, berita models.Berita) error
	UpdateBerita(ctx context.Context, berita models.Berita) error
	DeleteBerita(ctx context.Context, id uuid.UUID) error
	GetBeritaByID(ctx context.Context, id uuid.UUID) (models.Berita, error)
	// IncrementViews bumps the counter of a published berita and returns it.
	IncrementViews(ctx context.Context, slug string) (models.Berita, error)
	ListBerita(ctx context.Context, filter models.ListFilter) ([]models.Berita, int64, error)
	BeritaStats(ctx context.Context) (models.BeritaStats, error)
}

type GaleriRepository interface {
	SaveGaleri(ctx context.Context, galeri models.Galeri) error
	UpdateGaleri(ctx context.Context, galeri models.Galeri) error
	DeleteGaleri(ctx context.Context, id uuid.UUID) error
	GetGaleriByID(ctx context.Context, id uuid.UUID) (models.Galeri, error)
	ListGaleri(ctx context.Context, filter models.ListFilter) ([]models.Galeri, int64, error)
	GaleriStats(ctx context.Context) (models.GaleriStats, error)
}

type LaporanRepository interface {
	SaveLaporan(ctx context.Context, laporan models.Laporan) error
	UpdateLaporanStatus(ctx context.Context, id uuid.UUID, status models.LaporanStatus, updatedAt time.Time) error
	DeleteLaporan(ctx context.Context, id uuid.UUID) error
	GetLaporanByID(ctx context.Context, id uuid.UUID) (models.Laporan, error)
	ListLaporan(ctx context.Context, filter models.ListFilter) ([]models.Laporan, int64, error)
	LaporanStats(ctx context.Context) (models.LaporanStats, error)
}

package mongorepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/repository"
	"dinas_portal/internal/repository/mongorepo"
	"dinas_portal/internal/storage"
	"dinas_portal/internal/storage/mongodb"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupMongo(t *testing.T) *repository.Repository {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping mongo integration test in short mode")
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	st, err := mongodb.New(ctx, fmt.Sprintf("mongodb://%s:%s", host, port.Port()), "dinas_test", 4)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Stop(context.Background()) })

	require.NoError(t, st.EnsureIndexes(ctx))

	return mongorepo.NewRepository(st.Database())
}

func TestMongoRepositories(t *testing.T) {
	repo := setupMongo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("berita", func(t *testing.T) {
		b := models.Berita{
			ID:        uuid.New(),
			Title:     "Contoh Berita Satu",
			Slug:      "contoh-berita-satu",
			Content:   "<p>isi</p>",
			Published: true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, repo.Berita.SaveBerita(ctx, b))

		dup := b
		dup.ID = uuid.New()
		assert.ErrorIs(t, repo.Berita.SaveBerita(ctx, dup), storage.ErrSlugExists)

		got, err := repo.Berita.IncrementViews(ctx, b.Slug)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Views)
		assert.Equal(t, b.ID, got.ID)

		got, err = repo.Berita.IncrementViews(ctx, b.Slug)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Views)

		published := true
		items, total, err := repo.Berita.ListBerita(ctx, models.ListFilter{Search: "BERITA", Published: &published, Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, items, 1)

		stats, err := repo.Berita.BeritaStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.BeritaStats{Total: 1, Published: 1}, stats)

		require.NoError(t, repo.Berita.DeleteBerita(ctx, b.ID))
		_, err = repo.Berita.GetBeritaByID(ctx, b.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("galeri stats", func(t *testing.T) {
		for i, typ := range []models.GaleriType{models.GaleriTypePhoto, models.GaleriTypeVideo} {
			require.NoError(t, repo.Galeri.SaveGaleri(ctx, models.Galeri{
				ID:        uuid.New(),
				Title:     gofakeit.Sentence(3),
				ImageURL:  gofakeit.URL(),
				Type:      typ,
				Published: i == 0,
				CreatedAt: now,
				UpdatedAt: now,
			}))
		}

		stats, err := repo.Galeri.GaleriStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.GaleriStats{Total: 2, Published: 1, Draft: 1, Photo: 1, Video: 1}, stats)
	})

	t.Run("laporan status", func(t *testing.T) {
		l := models.Laporan{
			ID:        uuid.New(),
			Nama:      gofakeit.Name(),
			Email:     gofakeit.Email(),
			Phone:     gofakeit.Phone(),
			Message:   "Lampu jalan mati",
			Status:    models.LaporanStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, repo.Laporan.SaveLaporan(ctx, l))
		require.NoError(t, repo.Laporan.UpdateLaporanStatus(ctx, l.ID, models.LaporanStatusInProgress, time.Now()))

		got, err := repo.Laporan.GetLaporanByID(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, models.LaporanStatusInProgress, got.Status)

		stats, err := repo.Laporan.LaporanStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.InProgress)
	})

	t.Run("users", func(t *testing.T) {
		u := models.User{ID: uuid.New(), Username: "admin", Email: "admin@dinas.go.id", PasswordHash: []byte("x"), Role: models.RoleAdmin}
		require.NoError(t, repo.User.SaveUser(ctx, u))

		u.ID = uuid.New()
		assert.ErrorIs(t, repo.User.SaveUser(ctx, u), storage.ErrUserExists)

		got, err := repo.User.UserByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, "admin@dinas.go.id", got.Email)
	})
}

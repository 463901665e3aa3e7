package services

import (
	"context"
	"strings"
	"errors"
	"testing"
	"time"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/lib/logger/handlers/slogdiscard"
	"dinas_portal/internal/lib/sanitize"
	"dinas_portal/internal/storage"
	"dinas_portal/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBeritaRepository struct {
	mock.Mock
}

func (m *MockBeritaRepository) SaveBerita(ctx context.Context, b models.Berita) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBeritaRepository) UpdateBerita(ctx context.Context, b models.Berita) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBeritaRepository) DeleteBerita(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBeritaRepository) GetBeritaByID(ctx context.Context, id uuid.UUID) (models.Berita, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Berita), args.Error(1)
}

func (m *MockBeritaRepository) IncrementViews(ctx context.Context, slug string) (models.Berita, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.Berita), args.Error(1)
}

func (m *MockBeritaRepository) ListBerita(ctx context.Context, f models.ListFilter) ([]models.Berita, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Berita), args.Get(1).(int64), args.Error(2)
}

func (m *MockBeritaRepository) BeritaStats(ctx context.Context) (models.BeritaStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.BeritaStats), args.Error(1)
}

func newTestService() (*BeritaService, *MockBeritaRepository) {
	repo := new(MockBeritaRepository)
	return NewBeritaService(slogdiscard.NewDiscardLogger(), repo, sanitize.New()), repo
}

func TestBeritaService_CreateBerita(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		req       dto.CreateBeritaRequest
		mockSetup func(repo *MockBeritaRepository)
		check     func(t *testing.T, b models.Berita)
		wantErr   error
		wantValid bool
	}{
		{
			name: "slug from title",
			req:  dto.CreateBeritaRequest{Title: "Contoh Berita Satu", Content: "<p>Isi</p>", Published: true},
			mockSetup: func(repo *MockBeritaRepository) {
				repo.On("SaveBerita", ctx, mock.MatchedBy(func(b models.Berita) bool {
					return b.Slug == "contoh-berita-satu" && b.Published && b.Views == 0
				})).Return(nil).Once()
			},
			check: func(t *testing.T, b models.Berita) {
				assert.Equal(t, "contoh-berita-satu", b.Slug)
				assert.NotEqual(t, uuid.Nil, b.ID)
				assert.False(t, b.CreatedAt.IsZero())
			},
		},
		{
			name: "content sanitised",
			req:  dto.CreateBeritaRequest{Title: "Aman", Content: `<p>Halo</p><script>alert(1)</script>`, Summary: "<b>Ringkas</b>"},
			mockSetup: func(repo *MockBeritaRepository) {
				repo.On("SaveBerita", ctx, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, b models.Berita) {
				assert.NotContains(t, b.Content, "<script")
				assert.Contains(t, b.Content, "<p>Halo</p>")
				assert.Equal(t, "Ringkas", b.Summary)
			},
		},
		{
			name: "duplicate slug",
			req:  dto.CreateBeritaRequest{Title: "Contoh Berita Satu", Content: "isi"},
			mockSetup: func(repo *MockBeritaRepository) {
				repo.On("SaveBerita", ctx, mock.Anything).Return(storage.ErrSlugExists).Once()
			},
			wantErr: storage.ErrSlugExists,
		},
		{
			name:      "missing title",
			req:       dto.CreateBeritaRequest{Content: "isi"},
			mockSetup: func(repo *MockBeritaRepository) {},
			wantValid: true,
		},
		{
			name:      "content only script",
			req:       dto.CreateBeritaRequest{Title: "Judul", Content: "<script>alert(1)</script>"},
			mockSetup: func(repo *MockBeritaRepository) {},
			wantValid: true,
		},
		{
			name:      "title too long",
			req:       dto.CreateBeritaRequest{Title: strings.Repeat("a", models.MaxTitleLength+1), Content: "isi"},
			mockSetup: func(repo *MockBeritaRepository) {},
			wantValid: true,
		},
		{
			name:      "title without latin characters",
			req:       dto.CreateBeritaRequest{Title: "!!!", Content: "isi"},
			mockSetup: func(repo *MockBeritaRepository) {},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService()
			tt.mockSetup(repo)

			b, err := service.CreateBerita(ctx, tt.req)

			switch {
			case tt.wantValid:
				var verr *models.ValidationError
				assert.ErrorAs(t, err, &verr)
				repo.AssertNotCalled(t, "SaveBerita", mock.Anything, mock.Anything)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				tt.check(t, b)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestBeritaService_UpdateBerita(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	stored := func() models.Berita {
		return models.Berita{
			ID:        id,
			Title:     "Lama",
			Slug:      "lama",
			Summary:   "Ringkasan lama",
			Content:   "<p>lama</p>",
			Published: true,
			Views:     7,
			UpdatedAt: time.Now().Add(-time.Hour),
		}
	}

	t.Run("empty summary does not clear", func(t *testing.T) {
		service, repo := newTestService()
		repo.On("GetBeritaByID", ctx, id).Return(stored(), nil).Once()
		repo.On("UpdateBerita", ctx, mock.Anything).Return(nil).Once()

		got, err := service.UpdateBerita(ctx, id, dto.UpdateBeritaRequest{Summary: models.Some("")})
		require.NoError(t, err)
		assert.Equal(t, "Ringkasan lama", got.Summary)
		repo.AssertExpectations(t)
	})

	t.Run("title change keeps slug", func(t *testing.T) {
		service, repo := newTestService()
		repo.On("GetBeritaByID", ctx, id).Return(stored(), nil).Once()
		repo.On("UpdateBerita", ctx, mock.MatchedBy(func(b models.Berita) bool {
			return b.Title == "Baru" && b.Slug == "lama" && b.Views == 7
		})).Return(nil).Once()

		got, err := service.UpdateBerita(ctx, id, dto.UpdateBeritaRequest{Title: models.Some("Baru")})
		require.NoError(t, err)
		assert.Equal(t, "lama", got.Slug)
		repo.AssertExpectations(t)
	})

	t.Run("published false applied", func(t *testing.T) {
		service, repo := newTestService()
		repo.On("GetBeritaByID", ctx, id).Return(stored(), nil).Once()
		repo.On("UpdateBerita", ctx, mock.Anything).Return(nil).Once()

		got, err := service.UpdateBerita(ctx, id, dto.UpdateBeritaRequest{Published: models.Some(false)})
		require.NoError(t, err)
		assert.False(t, got.Published)
	})

	t.Run("content sanitised on update", func(t *testing.T) {
		service, repo := newTestService()
		repo.On("GetBeritaByID", ctx, id).Return(stored(), nil).Once()
		repo.On("UpdateBerita", ctx, mock.Anything).Return(nil).Once()

		got, err := service.UpdateBerita(ctx, id, dto.UpdateBeritaRequest{Content: models.Some(`<img src=x onerror="alert(1)">`)})
		require.NoError(t, err)
		assert.NotContains(t, got.Content, "onerror")
	})

	t.Run("title too long", func(t *testing.T) {
		service, repo := newTestService()

		_, err := service.UpdateBerita(ctx, id, dto.UpdateBeritaRequest{Title: models.Some(strings.Repeat("j", models.MaxTitleLength+1))})

		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
		repo.AssertNotCalled(t, "UpdateBerita", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		service, repo := newTestService()
		repo.On("GetBeritaByID", ctx, id).Return(models.Berita{}, storage.ErrNotFound).Once()

		_, err := service.UpdateBerita(ctx, id, dto.UpdateBeritaRequest{})
		assert.ErrorIs(t, err, storage.ErrNotFound)
		repo.AssertNotCalled(t, "UpdateBerita", mock.Anything, mock.Anything)
	})
}

func TestBeritaService_ViewBerita(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()

	repo.On("IncrementViews", ctx, "contoh-berita-satu").
		Return(models.Berita{Slug: "contoh-berita-satu", Published: true, Views: 1}, nil).Once()
	repo.On("IncrementViews", ctx, "contoh-berita-satu").
		Return(models.Berita{Slug: "contoh-berita-satu", Published: true, Views: 2}, nil).Once()
	repo.On("IncrementViews", ctx, "draf").Return(models.Berita{}, storage.ErrNotFound).Once()

	first, err := service.ViewBerita(ctx, "contoh-berita-satu")
	require.NoError(t, err)
	second, err := service.ViewBerita(ctx, "contoh-berita-satu")
	require.NoError(t, err)
	assert.Equal(t, first.Views+1, second.Views)

	_, err = service.ViewBerita(ctx, "draf")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	repo.AssertExpectations(t)
}

func TestBeritaService_DeleteBerita(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		service, repo := newTestService()
		repo.On("GetBeritaByID", ctx, id).Return(models.Berita{ID: id}, nil).Once()
		repo.On("DeleteBerita", ctx, id).Return(nil).Once()

		assert.NoError(t, service.DeleteBerita(ctx, id))
		repo.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		service, repo := newTestService()
		repo.On("GetBeritaByID", ctx, id).Return(models.Berita{}, storage.ErrNotFound).Once()

		assert.ErrorIs(t, service.DeleteBerita(ctx, id), storage.ErrNotFound)
		repo.AssertNotCalled(t, "DeleteBerita", mock.Anything, mock.Anything)
	})
}

func TestBeritaService_ListBerita(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()
	filter := models.ListFilter{Page: 2, Limit: 10}

	repo.On("ListBerita", ctx, filter).Return(make([]models.Berita, 10), int64(25), nil).Once()
	items, total, err := service.ListBerita(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, items, 10)
	assert.Equal(t, int64(25), total)

	repo.On("ListBerita", ctx, models.ListFilter{}).Return([]models.Berita(nil), int64(0), errors.New("db down")).Once()
	_, _, err = service.ListBerita(ctx, models.ListFilter{})
	assert.Error(t, err)
}

package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/lib/logger/handlers/slogdiscard"
	"dinas_portal/internal/lib/sanitize"
	"dinas_portal/internal/storage"
	"dinas_portal/internal/transport/http/dto"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLaporanRepository struct {
	mock.Mock
}

func (m *MockLaporanRepository) SaveLaporan(ctx context.Context, l models.Laporan) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLaporanRepository) UpdateLaporanStatus(ctx context.Context, id uuid.UUID, status models.LaporanStatus, updatedAt time.Time) error {
	return m.Called(ctx, id, status, updatedAt).Error(0)
}

func (m *MockLaporanRepository) DeleteLaporan(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLaporanRepository) GetLaporanByID(ctx context.Context, id uuid.UUID) (models.Laporan, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Laporan), args.Error(1)
}

func (m *MockLaporanRepository) ListLaporan(ctx context.Context, f models.ListFilter) ([]models.Laporan, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Laporan), args.Get(1).(int64), args.Error(2)
}

func (m *MockLaporanRepository) LaporanStats(ctx context.Context) (models.LaporanStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.LaporanStats), args.Error(1)
}

func newTestService() (*LaporanService, *MockLaporanRepository) {
	repo := new(MockLaporanRepository)
	return NewLaporanService(slogdiscard.NewDiscardLogger(), repo, sanitize.New()), repo
}

func validRequest() dto.CreateLaporanRequest {
	return dto.CreateLaporanRequest{
		Nama:    gofakeit.Name(),
		Email:   gofakeit.Email(),
		Phone:   "081234567890",
		Address: "Jl. Merdeka No. 1",
		Message: "Jalan berlubang di depan pasar",
	}
}

func TestLaporanService_CreateLaporan(t *testing.T) {
	ctx := context.Background()

	t.Run("always pending", func(t *testing.T) {
		service, repo := newTestService()
		repo.On("SaveLaporan", ctx, mock.MatchedBy(func(l models.Laporan) bool {
			return l.Status == models.LaporanStatusPending
		})).Return(nil).Once()

		got, err := service.CreateLaporan(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, models.LaporanStatusPending, got.Status)
		repo.AssertExpectations(t)
	})

	t.Run("message stripped of markup", func(t *testing.T) {
		service, repo := newTestService()
		repo.On("SaveLaporan", ctx, mock.Anything).Return(nil).Once()

		req := validRequest()
		req.Message = `<script>alert(1)</script>Lampu mati`

		got, err := service.CreateLaporan(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Lampu mati", got.Message)
	})

	t.Run("nama at column size accepted", func(t *testing.T) {
		service, repo := newTestService()
		repo.On("SaveLaporan", ctx, mock.MatchedBy(func(l models.Laporan) bool {
			return len([]rune(l.Nama)) == models.MaxNamaLength
		})).Return(nil).Once()

		req := validRequest()
		req.Nama = strings.Repeat("a", models.MaxNamaLength)

		_, err := service.CreateLaporan(ctx, req)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	invalid := []struct {
		name   string
		mutate func(r *dto.CreateLaporanRequest)
		field  string
	}{
		{name: "bad email", mutate: func(r *dto.CreateLaporanRequest) { r.Email = "bukan-email" }, field: "email"},
		{name: "missing nama", mutate: func(r *dto.CreateLaporanRequest) { r.Nama = " " }, field: "nama"},
		{name: "missing phone", mutate: func(r *dto.CreateLaporanRequest) { r.Phone = "" }, field: "phone"},
		{name: "missing message", mutate: func(r *dto.CreateLaporanRequest) { r.Message = "" }, field: "message"},
		{name: "nama grows past column when escaped", mutate: func(r *dto.CreateLaporanRequest) { r.Nama = strings.Repeat("&", 255) }, field: "nama"},
		{name: "phone grows past column when escaped", mutate: func(r *dto.CreateLaporanRequest) { r.Phone = strings.Repeat("&", 8) }, field: "phone"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService()
			req := validRequest()
			tt.mutate(&req)

			_, err := service.CreateLaporan(ctx, req)

			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			repo.AssertNotCalled(t, "SaveLaporan", mock.Anything, mock.Anything)
		})
	}
}

func TestLaporanService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("any transition allowed", func(t *testing.T) {
		service, repo := newTestService()
		repo.On("GetLaporanByID", ctx, id).Return(models.Laporan{ID: id, Status: models.LaporanStatusClosed}, nil).Once()
		repo.On("UpdateLaporanStatus", ctx, id, models.LaporanStatusPending, mock.AnythingOfType("time.Time")).Return(nil).Once()

		got, err := service.UpdateStatus(ctx, id, models.LaporanStatusPending)
		require.NoError(t, err)
		assert.Equal(t, models.LaporanStatusPending, got.Status)
		repo.AssertExpectations(t)
	})

	t.Run("unknown status", func(t *testing.T) {
		service, repo := newTestService()

		_, err := service.UpdateStatus(ctx, id, "done")
		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "GetLaporanByID", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		service, repo := newTestService()
		repo.On("GetLaporanByID", ctx, id).Return(models.Laporan{}, storage.ErrNotFound).Once()

		_, err := service.UpdateStatus(ctx, id, models.LaporanStatusResolved)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

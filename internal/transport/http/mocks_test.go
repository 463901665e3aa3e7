package http

import (
	"context"
	"mime/multipart"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBeritaService struct{ mock.Mock }

func (m *MockBeritaService) CreateBerita(ctx context.Context, req dto.CreateBeritaRequest) (models.Berita, error) {
	args := m.Called(req)
	return args.Get(0).(models.Berita), args.Error(1)
}

func (m *MockBeritaService) UpdateBerita(ctx context.Context, id uuid.UUID, req dto.UpdateBeritaRequest) (models.Berita, error) {
	args := m.Called(id, req)
	return args.Get(0).(models.Berita), args.Error(1)
}

func (m *MockBeritaService) DeleteBerita(ctx context.Context, id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockBeritaService) GetBeritaByID(ctx context.Context, id uuid.UUID) (models.Berita, error) {
	args := m.Called(id)
	return args.Get(0).(models.Berita), args.Error(1)
}

func (m *MockBeritaService) ViewBerita(ctx context.Context, slug string) (models.Berita, error) {
	args := m.Called(slug)
	return args.Get(0).(models.Berita), args.Error(1)
}

func (m *MockBeritaService) ListBerita(ctx context.Context, filter models.ListFilter) ([]models.Berita, int64, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Berita), args.Get(1).(int64), args.Error(2)
}

func (m *MockBeritaService) BeritaStats(ctx context.Context) (models.BeritaStats, error) {
	args := m.Called()
	return args.Get(0).(models.BeritaStats), args.Error(1)
}

type MockGaleriService struct{ mock.Mock }

func (m *MockGaleriService) CreateGaleri(ctx context.Context, req dto.CreateGaleriRequest) (models.Galeri, error) {
	args := m.Called(req)
	return args.Get(0).(models.Galeri), args.Error(1)
}

func (m *MockGaleriService) UpdateGaleri(ctx context.Context, id uuid.UUID, req dto.UpdateGaleriRequest) (models.Galeri, error) {
	args := m.Called(id, req)
	return args.Get(0).(models.Galeri), args.Error(1)
}

func (m *MockGaleriService) DeleteGaleri(ctx context.Context, id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockGaleriService) GetGaleriByID(ctx context.Context, id uuid.UUID) (models.Galeri, error) {
	args := m.Called(id)
	return args.Get(0).(models.Galeri), args.Error(1)
}

func (m *MockGaleriService) ListGaleri(ctx context.Context, filter models.ListFilter) ([]models.Galeri, int64, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Galeri), args.Get(1).(int64), args.Error(2)
}

func (m *MockGaleriService) GaleriStats(ctx context.Context) (models.GaleriStats, error) {
	args := m.Called()
	return args.Get(0).(models.GaleriStats), args.Error(1)
}

type MockLaporanService struct{ mock.Mock }

func (m *MockLaporanService) CreateLaporan(ctx context.Context, req dto.CreateLaporanRequest) (models.Laporan, error) {
	args := m.Called(req)
	return args.Get(0).(models.Laporan), args.Error(1)
}

func (m *MockLaporanService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.LaporanStatus) (models.Laporan, error) {
	args := m.Called(id, status)
	return args.Get(0).(models.Laporan), args.Error(1)
}

func (m *MockLaporanService) DeleteLaporan(ctx context.Context, id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockLaporanService) GetLaporanByID(ctx context.Context, id uuid.UUID) (models.Laporan, error) {
	args := m.Called(id)
	return args.Get(0).(models.Laporan), args.Error(1)
}

func (m *MockLaporanService) ListLaporan(ctx context.Context, filter models.ListFilter) ([]models.Laporan, int64, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Laporan), args.Get(1).(int64), args.Error(2)
}

func (m *MockLaporanService) LaporanStats(ctx context.Context) (models.LaporanStats, error) {
	args := m.Called()
	return args.Get(0).(models.LaporanStats), args.Error(1)
}

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Login(ctx context.Context, username, password string) (models.Token, models.User, error) {
	args := m.Called(username, password)
	return args.Get(0).(models.Token), args.Get(1).(models.User), args.Error(2)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) ParseToken(ctx context.Context, token string) (models.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(models.TokenClaims), args.Error(1)
}

func (m *MockTokenService) RevokeToken(ctx context.Context, claims models.TokenClaims) error {
	return m.Called(claims).Error(0)
}

type MockDashboardService struct{ mock.Mock }

func (m *MockDashboardService) Dashboard(ctx context.Context) (dto.Dashboard, error) {
	args := m.Called()
	return args.Get(0).(dto.Dashboard), args.Error(1)
}

type MockUploadService struct{ mock.Mock }

func (m *MockUploadService) Upload(ctx context.Context, file *multipart.FileHeader) (dto.UploadResult, error) {
	args := m.Called(file.Filename)
	return args.Get(0).(dto.UploadResult), args.Error(1)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/lib/sanitize"
	"dinas_portal/internal/metrics"
	"dinas_portal/internal/repository"
	"dinas_portal/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type LaporanService struct {
	log       *slog.Logger
	repo      repository.LaporanRepository
	sanitizer *sanitize.Sanitizer
	validate  *validator.Validate
}

func NewLaporanService(log *slog.Logger, repo repository.LaporanRepository, sanitizer *sanitize.Sanitizer) *LaporanService {
	return &LaporanService{
		log:       log,
		repo:      repo,
		sanitizer: sanitizer,
		validate:  validator.New(),
	}
}

// CreateLaporan stores a citizen report. New reports always start as pending.
func (s *LaporanService) CreateLaporan(ctx context.Context, req dto.CreateLaporanRequest) (models.Laporan, error) {
	const op = "laporan_service.CreateLaporan"
	log := s.log.With(slog.String("op", op))

	// lengths are checked on the sanitized values, escaping can grow them
	nama := s.sanitizer.Text(req.Nama)
	email := strings.TrimSpace(req.Email)
	phone := s.sanitizer.Text(req.Phone)
	message := s.sanitizer.Text(req.Message)

	switch {
	case nama == "":
		return models.Laporan{}, models.NewValidationError("nama", "Nama wajib diisi")
	case email == "":
		return models.Laporan{}, models.NewValidationError("email", "Email wajib diisi")
	case phone == "":
		return models.Laporan{}, models.NewValidationError("phone", "Nomor telepon wajib diisi")
	case message == "":
		return models.Laporan{}, models.NewValidationError("message", "Pesan wajib diisi")
	case models.TooLong(nama, models.MaxNamaLength):
		return models.Laporan{}, models.NewValidationError("nama", "Nama terlalu panjang")
	case models.TooLong(phone, models.MaxPhoneLength):
		return models.Laporan{}, models.NewValidationError("phone", "Nomor telepon terlalu panjang")
	}

	if err := s.validate.Var(email, "email"); err != nil {
		return models.Laporan{}, models.NewValidationError("email", "Format email tidak valid")
	}

	now := time.Now().UTC()
	laporan := models.Laporan{
		ID:        uuid.New(),
		Nama:      nama,
		Email:     email,
		Phone:     phone,
		Address:   s.sanitizer.Text(req.Address),
		Message:   message,
		Status:    models.LaporanStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.SaveLaporan(ctx, laporan); err != nil {
		log.Error("failed to save laporan", sl.Err(err))
		return models.Laporan{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.LaporanSubmittedTotal.Inc()
	log.Info("laporan submitted", slog.String("id", laporan.ID.String()))

	return laporan, nil
}

// UpdateStatus moves a report to any known status.
func (s *LaporanService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.LaporanStatus) (models.Laporan, error) {
	const op = "laporan_service.UpdateStatus"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	if !status.Valid() {
		return models.Laporan{}, models.NewValidationError("status", "Status tidak valid")
	}

	laporan, err := s.repo.GetLaporanByID(ctx, id)
	if err != nil {
		return models.Laporan{}, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLaporanStatus(ctx, id, status, now); err != nil {
		log.Error("failed to update laporan status", sl.Err(err))
		return models.Laporan{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("laporan status changed", slog.String("from", string(laporan.Status)), slog.String("to", string(status)))

	laporan.Status = status
	laporan.UpdatedAt = now

	return laporan, nil
}

func (s *LaporanService) DeleteLaporan(ctx context.Context, id uuid.UUID) error {
	const op = "laporan_service.DeleteLaporan"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	if _, err := s.repo.GetLaporanByID(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteLaporan(ctx, id); err != nil {
		log.Error("failed to delete laporan", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("laporan deleted")

	return nil
}

func (s *LaporanService) GetLaporanByID(ctx context.Context, id uuid.UUID) (models.Laporan, error) {
	const op = "laporan_service.GetLaporanByID"

	laporan, err := s.repo.GetLaporanByID(ctx, id)
	if err != nil {
		return models.Laporan{}, fmt.Errorf("%s: %w", op, err)
	}

	return laporan, nil
}

func (s *LaporanService) ListLaporan(ctx context.Context, filter models.ListFilter) ([]models.Laporan, int64, error) {
	const op = "laporan_service.ListLaporan"

	items, total, err := s.repo.ListLaporan(ctx, filter)
	if err != nil {
		s.log.Error("failed to list laporan", slog.String("op", op), sl.Err(err))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (s *LaporanService) LaporanStats(ctx context.Context) (models.LaporanStats, error) {
	const op = "laporan_service.LaporanStats"

	stats, err := s.repo.LaporanStats(ctx)
	if err != nil {
		s.log.Error("failed to count laporan", slog.String("op", op), sl.Err(err))
		return models.LaporanStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

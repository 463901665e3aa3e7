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
	"dinas_portal/internal/repository"
	"dinas_portal/internal/transport/http/dto"

	"github.com/google/uuid"
)

type GaleriService struct {
	log       *slog.Logger
	repo      repository.GaleriRepository
	sanitizer *sanitize.Sanitizer
}

func NewGaleriService(log *slog.Logger, repo repository.GaleriRepository, sanitizer *sanitize.Sanitizer) *GaleriService {
	return &GaleriService{log: log, repo: repo, sanitizer: sanitizer}
}

func (s *GaleriService) CreateGaleri(ctx context.Context, req dto.CreateGaleriRequest) (models.Galeri, error) {
	const op = "galeri_service.CreateGaleri"
	log := s.log.With(slog.String("op", op))

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Galeri{}, models.NewValidationError("title", "Judul wajib diisi")
	}
	if models.TooLong(title, models.MaxTitleLength) {
		return models.Galeri{}, models.NewValidationError("title", "Judul terlalu panjang")
	}
	imageURL := strings.TrimSpace(req.ImageURL)
	if imageURL == "" {
		return models.Galeri{}, models.NewValidationError("imageUrl", "URL gambar wajib diisi")
	}
	if !req.Type.Valid() {
		return models.Galeri{}, models.NewValidationError("type", "Tipe harus photo atau video")
	}

	now := time.Now().UTC()
	galeri := models.Galeri{
		ID:          uuid.New(),
		Title:       title,
		Description: s.sanitizer.Text(req.Description),
		ImageURL:    imageURL,
		Type:        req.Type,
		Published:   req.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.SaveGaleri(ctx, galeri); err != nil {
		log.Error("failed to save galeri", sl.Err(err))
		return models.Galeri{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("galeri created", slog.String("id", galeri.ID.String()))

	return galeri, nil
}

// UpdateGaleri applies present, non-empty string fields. An unknown type is rejected.
func (s *GaleriService) UpdateGaleri(ctx context.Context, id uuid.UUID, req dto.UpdateGaleriRequest) (models.Galeri, error) {
	const op = "galeri_service.UpdateGaleri"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	upd := req.Changes()

	typ, typeSet := models.NonEmpty(upd.Type)
	if typeSet && !typ.Valid() {
		return models.Galeri{}, models.NewValidationError("type", "Tipe harus photo atau video")
	}

	title, titleSet := models.NonEmpty(upd.Title)
	title = strings.TrimSpace(title)
	if titleSet && models.TooLong(title, models.MaxTitleLength) {
		return models.Galeri{}, models.NewValidationError("title", "Judul terlalu panjang")
	}

	galeri, err := s.repo.GetGaleriByID(ctx, id)
	if err != nil {
		return models.Galeri{}, fmt.Errorf("%s: %w", op, err)
	}

	if titleSet && title != "" {
		galeri.Title = title
	}
	if v, ok := models.NonEmpty(upd.Description); ok {
		galeri.Description = s.sanitizer.Text(v)
	}
	if v, ok := models.NonEmpty(upd.ImageURL); ok {
		galeri.ImageURL = strings.TrimSpace(v)
	}
	if typeSet {
		galeri.Type = typ
	}
	if v, ok := upd.Published.Get(); ok {
		galeri.Published = v
	}

	galeri.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateGaleri(ctx, galeri); err != nil {
		log.Error("failed to update galeri", sl.Err(err))
		return models.Galeri{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("galeri updated")

	return galeri, nil
}

func (s *GaleriService) DeleteGaleri(ctx context.Context, id uuid.UUID) error {
	const op = "galeri_service.DeleteGaleri"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	if _, err := s.repo.GetGaleriByID(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteGaleri(ctx, id); err != nil {
		log.Error("failed to delete galeri", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("galeri deleted")

	return nil
}

func (s *GaleriService) GetGaleriByID(ctx context.Context, id uuid.UUID) (models.Galeri, error) {
	const op = "galeri_service.GetGaleriByID"

	galeri, err := s.repo.GetGaleriByID(ctx, id)
	if err != nil {
		return models.Galeri{}, fmt.Errorf("%s: %w", op, err)
	}

	return galeri, nil
}

func (s *GaleriService) ListGaleri(ctx context.Context, filter models.ListFilter) ([]models.Galeri, int64, error) {
	const op = "galeri_service.ListGaleri"

	items, total, err := s.repo.ListGaleri(ctx, filter)
	if err != nil {
		s.log.Error("failed to list galeri", slog.String("op", op), sl.Err(err))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (s *GaleriService) GaleriStats(ctx context.Context) (models.GaleriStats, error) {
	const op = "galeri_service.GaleriStats"

	stats, err := s.repo.GaleriStats(ctx)
	if err != nil {
		s.log.Error("failed to count galeri", slog.String("op", op), sl.Err(err))
		return models.GaleriStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

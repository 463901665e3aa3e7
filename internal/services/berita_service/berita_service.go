package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/lib/sanitize"
	"dinas_portal/internal/lib/slug"
	"dinas_portal/internal/metrics"
	"dinas_portal/internal/repository"
	"dinas_portal/internal/storage"
	"dinas_portal/internal/transport/http/dto"

	"github.com/google/uuid"
)

type BeritaService struct {
	log       *slog.Logger
	repo      repository.BeritaRepository
	sanitizer *sanitize.Sanitizer
}

func NewBeritaService(log *slog.Logger, repo repository.BeritaRepository, sanitizer *sanitize.Sanitizer) *BeritaService {
	return &BeritaService{log: log, repo: repo, sanitizer: sanitizer}
}

// CreateBerita validates and cleans the input, derives the slug from the title and stores the article.
func (s *BeritaService) CreateBerita(ctx context.Context, req dto.CreateBeritaRequest) (models.Berita, error) {
	const op = "berita_service.CreateBerita"
	log := s.log.With(slog.String("op", op))

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Berita{}, models.NewValidationError("title", "Judul wajib diisi")
	}
	if models.TooLong(title, models.MaxTitleLength) {
		return models.Berita{}, models.NewValidationError("title", "Judul terlalu panjang")
	}

	content := s.sanitizer.HTML(req.Content)
	if content == "" {
		return models.Berita{}, models.NewValidationError("content", "Konten wajib diisi")
	}

	slugValue := slug.Make(title)
	if slugValue == "" {
		return models.Berita{}, models.NewValidationError("title", "Judul harus mengandung huruf atau angka")
	}

	now := time.Now().UTC()
	berita := models.Berita{
		ID:        uuid.New(),
		Title:     title,
		Slug:      slugValue,
		Summary:   s.sanitizer.Text(req.Summary),
		Content:   content,
		ImageURL:  strings.TrimSpace(req.ImageURL),
		Published: req.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.SaveBerita(ctx, berita); err != nil {
		if errors.Is(err, storage.ErrSlugExists) {
			log.Warn("slug already taken", slog.String("slug", berita.Slug))
			return models.Berita{}, fmt.Errorf("%s: %w", op, storage.ErrSlugExists)
		}
		log.Error("failed to save berita", sl.Err(err))
		return models.Berita{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("berita created", slog.String("id", berita.ID.String()), slog.String("slug", berita.Slug))

	return berita, nil
}

// UpdateBerita merges a partial update into the stored article. String fields
// are only applied when they are present and not empty, published whenever it
// is present. The slug never changes.
func (s *BeritaService) UpdateBerita(ctx context.Context, id uuid.UUID, req dto.UpdateBeritaRequest) (models.Berita, error) {
	const op = "berita_service.UpdateBerita"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	upd := req.Changes()

	title, titleSet := models.NonEmpty(upd.Title)
	title = strings.TrimSpace(title)
	if titleSet && models.TooLong(title, models.MaxTitleLength) {
		return models.Berita{}, models.NewValidationError("title", "Judul terlalu panjang")
	}

	berita, err := s.repo.GetBeritaByID(ctx, id)
	if err != nil {
		return models.Berita{}, fmt.Errorf("%s: %w", op, err)
	}

	if titleSet && title != "" {
		berita.Title = title
	}
	if v, ok := models.NonEmpty(upd.Summary); ok {
		berita.Summary = s.sanitizer.Text(v)
	}
	if v, ok := models.NonEmpty(upd.Content); ok {
		berita.Content = s.sanitizer.HTML(v)
	}
	if v, ok := models.NonEmpty(upd.ImageURL); ok {
		berita.ImageURL = strings.TrimSpace(v)
	}
	if v, ok := upd.Published.Get(); ok {
		berita.Published = v
	}

	berita.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateBerita(ctx, berita); err != nil {
		log.Error("failed to update berita", sl.Err(err))
		return models.Berita{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("berita updated")

	return berita, nil
}

func (s *BeritaService) DeleteBerita(ctx context.Context, id uuid.UUID) error {
	const op = "berita_service.DeleteBerita"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	if _, err := s.repo.GetBeritaByID(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteBerita(ctx, id); err != nil {
		log.Error("failed to delete berita", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("berita deleted")

	return nil
}

func (s *BeritaService) GetBeritaByID(ctx context.Context, id uuid.UUID) (models.Berita, error) {
	const op = "berita_service.GetBeritaByID"

	berita, err := s.repo.GetBeritaByID(ctx, id)
	if err != nil {
		return models.Berita{}, fmt.Errorf("%s: %w", op, err)
	}

	return berita, nil
}

// ViewBerita returns a published article by slug and counts the view.
// Drafts are reported as not found.
func (s *BeritaService) ViewBerita(ctx context.Context, slug string) (models.Berita, error) {
	const op = "berita_service.ViewBerita"

	berita, err := s.repo.IncrementViews(ctx, slug)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Error("failed to load berita", slog.String("op", op), slog.String("slug", slug), sl.Err(err))
		}
		return models.Berita{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.BeritaViewsTotal.Inc()

	return berita, nil
}

func (s *BeritaService) ListBerita(ctx context.Context, filter models.ListFilter) ([]models.Berita, int64, error) {
	const op = "berita_service.ListBerita"

	items, total, err := s.repo.ListBerita(ctx, filter)
	if err != nil {
		s.log.Error("failed to list berita", slog.String("op", op), sl.Err(err))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (s *BeritaService) BeritaStats(ctx context.Context) (models.BeritaStats, error) {
	const op = "berita_service.BeritaStats"

	stats, err := s.repo.BeritaStats(ctx)
	if err != nil {
		s.log.Error("failed to count berita", slog.String("op", op), sl.Err(err))
		return models.BeritaStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

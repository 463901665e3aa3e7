package services

import (
	"context"
	"fmt"
	"log/slog"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/repository"
	"dinas_portal/internal/transport/http/dto"

	"golang.org/x/sync/errgroup"
)

// RecentLimit is how many of the latest records of each kind the dashboard shows.
const RecentLimit = 5

type DashboardService struct {
	log  *slog.Logger
	repo *repository.Repository
}

func NewDashboardService(log *slog.Logger, repo *repository.Repository) *DashboardService {
	return &DashboardService{log: log, repo: repo}
}

// Dashboard loads the latest records and counters of every resource in parallel.
// The first failure cancels the remaining queries.
func (s *DashboardService) Dashboard(ctx context.Context) (dto.Dashboard, error) {
	const op = "dashboard_service.Dashboard"

	var d dto.Dashboard
	recent := models.ListFilter{Page: 1, Limit: RecentLimit}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, _, err := s.repo.Berita.ListBerita(gctx, recent)
		d.Berita = items
		return err
	})
	g.Go(func() error {
		items, _, err := s.repo.Galeri.ListGaleri(gctx, recent)
		d.Galeri = items
		return err
	})
	g.Go(func() error {
		items, _, err := s.repo.Laporan.ListLaporan(gctx, recent)
		d.Laporan = items
		return err
	})
	g.Go(func() (err error) {
		d.BeritaStats, err = s.repo.Berita.BeritaStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.GaleriStats, err = s.repo.Galeri.GaleriStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.LaporanStats, err = s.repo.Laporan.LaporanStats(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error("failed to load dashboard", slog.String("op", op), sl.Err(err))
		return dto.Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}

	if d.Berita == nil {
		d.Berita = []models.Berita{}
	}
	if d.Galeri == nil {
		d.Galeri = []models.Galeri{}
	}
	if d.Laporan == nil {
		d.Laporan = []models.Laporan{}
	}

	return d, nil
}

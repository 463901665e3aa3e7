package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpapp "dinas_portal/internal/app/http"
	"dinas_portal/internal/config"
	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/lib/sanitize"
	"dinas_portal/internal/middleware"
	"dinas_portal/internal/ratelimit"
	"dinas_portal/internal/repository"
	"dinas_portal/internal/repository/mongorepo"
	"dinas_portal/internal/services/auth"
	beritasvc "dinas_portal/internal/services/berita_service"
	dashboardsvc "dinas_portal/internal/services/dashboard_service"
	galerisvc "dinas_portal/internal/services/galeri_service"
	laporansvc "dinas_portal/internal/services/laporan_service"
	tokensvc "dinas_portal/internal/services/token_service"
	uploadsvc "dinas_portal/internal/services/upload_service"
	filestorage "dinas_portal/internal/storage/filestorage"
	"dinas_portal/internal/storage/mongodb"
	"dinas_portal/internal/storage/postgresql"
	redisapp "dinas_portal/internal/storage/redis"
	httprouters "dinas_portal/internal/transport/http"
)

const (
	redisLimiterWindow = time.Minute
	revokedCleanup     = 10 * time.Minute
)

type App struct {
	log        *slog.Logger
	HTTPServer *httpapp.Server
	closers    []func(ctx context.Context) error
}

// New connects the storage backends, wires services and routes. Everything
// opened so far is closed again when a later step fails.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (_ *App, err error) {
	const op = "app.New"

	a := &App{log: log}
	defer func() {
		if err != nil {
			_ = a.Stop(context.Background())
		}
	}()

	checks := make(map[string]httprouters.HealthCheck)

	repo, err := a.openStorage(ctx, cfg, checks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var (
		tokenRepo repository.TokenRepository
		limiter   ratelimit.Limiter
	)

	if cfg.Redis.Addr != "" {
		client := redisapp.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })

		if err := client.HealthCheck(ctx); err != nil {
			return nil, fmt.Errorf("%s: redis: %w", op, err)
		}

		tokenRepo = repository.NewRedisTokenRepo(client)
		limiter = ratelimit.NewRedisLimiter(client, cfg.RateLimit.RPS, cfg.RateLimit.Burst, redisLimiterWindow)
		checks["redis"] = client.HealthCheck

		log.Info("redis connected", slog.String("addr", cfg.Redis.Addr))
	} else {
		tokenRepo = repository.NewMemoryTokenRepo(revokedCleanup)
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TTL)

		log.Info("redis not configured, using in-memory revocation and rate limiting")
	}

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: file storage: %w", op, err)
	}

	sanitizer := sanitize.New()

	tokenService := tokensvc.NewTokenService(log, tokenRepo, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	authService := auth.New(log, repo.User, repo.User, tokenService)
	beritaService := beritasvc.NewBeritaService(log, repo.Berita, sanitizer)
	galeriService := galerisvc.NewGaleriService(log, repo.Galeri, sanitizer)
	laporanService := laporansvc.NewLaporanService(log, repo.Laporan, sanitizer)
	dashboardService := dashboardsvc.NewDashboardService(log, repo)
	uploadService := uploadsvc.NewUploadService(log, fileStorage, cfg.FileStorage.MaxSize)

	if err := authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		return nil, fmt.Errorf("%s: seed admin: %w", op, err)
	}

	routers := httprouters.NewRouter(
		log,
		beritaService,
		galeriService,
		laporanService,
		authService,
		tokenService,
		dashboardService,
		uploadService,
		httprouters.Options{
			CookieSecure:   cfg.Auth.CookieSecure,
			PublicMaxLimit: cfg.Pagination.PublicMaxLimit,
			HealthChecks:   checks,
		},
	)

	server, err := httpapp.New(log, httpapp.Config{
		Address:       cfg.Address(),
		ReadTimeout:   cfg.HTTP.Timeout,
		IdleTimeout:   cfg.HTTP.IdleTimeout,
		SessionSecret: cfg.Auth.SessionSecret,
		CookieSecure:  cfg.Auth.CookieSecure,
		UploadDir:     fileStorage.GetBaseDir(),
		UploadURL:     cfg.FileStorage.BaseURL,
	}, routers, httpapp.Interceptors{
		Logger:     middleware.NewRequestLogger(log),
		Metrics:    middleware.NewPrometheus(),
		RateLimit:  middleware.NewRateLimit(log, limiter),
		AdminGuard: middleware.NewAdminGuard(log, cfg.Auth.Secret, tokenService),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	server.BuildRouters()
	a.HTTPServer = server

	return a, nil
}

func (a *App) openStorage(ctx context.Context, cfg *config.Config, checks map[string]httprouters.HealthCheck) (*repository.Repository, error) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		st, err := mongodb.New(ctx, cfg.Storage.MongoURI, cfg.Storage.MongoDB, uint64(cfg.Storage.MaxPoolSize))
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, st.Stop)

		if err := st.EnsureIndexes(ctx); err != nil {
			return nil, err
		}

		checks["db"] = st.Ping
		a.log.Info("mongodb connected", slog.String("db", cfg.Storage.MongoDB))

		return mongorepo.NewRepository(st.Database()), nil

	default:
		if err := postgresql.Migrate(cfg.Storage.DSN); err != nil {
			return nil, err
		}

		st, err := postgresql.New(ctx, cfg.Storage.DSN, cfg.Storage.MaxPoolSize)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error {
			st.Stop()
			return nil
		})

		checks["db"] = st.Ping
		a.log.Info("postgres connected")

		return repository.NewRepository(st.Pool()), nil
	}
}

// Stop shuts the HTTP server down first, then closes storage in reverse order.
func (a *App) Stop(ctx context.Context) error {
	var errs []error

	if a.HTTPServer != nil {
		if err := a.HTTPServer.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.log.Error("failed to close resource", sl.Err(err))
			errs = append(errs, err)
		}
	}
	a.closers = nil

	return errors.Join(errs...)
}

package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/middleware"
	httprouters "dinas_portal/internal/transport/http"
	_ "dinas_portal/internal/transport/http/docs"

	"github.com/arl/statsviz"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type Config struct {
	Address       string
	ReadTimeout   time.Duration
	IdleTimeout   time.Duration
	SessionSecret string
	CookieSecure  bool
	UploadDir     string
	UploadURL     string
}

// Interceptors holds the pipeline steps that only some routes get.
type Interceptors struct {
	Logger     middleware.Interceptor
	Metrics    middleware.Interceptor
	RateLimit  middleware.Interceptor
	AdminGuard middleware.Interceptor
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	cfg     Config
	ic      Interceptors
}

func New(log *slog.Logger, cfg Config, routers *httprouters.Routers, ic Interceptors) (*Server, error) {
	const op = "httpapp.New"

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.ReadTimeout
	e.Server.IdleTimeout = cfg.IdleTimeout

	e.Validator = httprouters.NewValidator()

	renderer, err := httprouters.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	e.Renderer = renderer

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	e.Use(middleware.NewPipeline(
		middleware.Wrap("request_id", echomw.RequestID()),
		ic.Logger,
		middleware.Wrap("recover", echomw.Recover()),
		ic.Metrics,
		middleware.Wrap("cors", echomw.CORS()),
		middleware.Wrap("session", session.Middleware(store)),
	).Middleware())

	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		log.Warn("statsviz start with error", sl.Err(err))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		cfg:     cfg,
		ic:      ic,
	}, nil
}

// Echo exposes the router, mostly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}

func (s *Server) MustRun() {
	const op = "httpapp.Server.MustRun"

	s.log.Info("starting http server", slog.String("op", op), slog.String("address", s.cfg.Address))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "httpapp.Server.Start"

	if err := s.e.Start(s.cfg.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	const op = "httpapp.Server.Stop"

	s.log.Info("stopping http server", slog.String("op", op))

	if err := s.e.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s: could not shutdown server gracefully: %w", op, err)
	}

	return nil
}

func (s *Server) BuildRouters() {
	r := s.routers

	guard := middleware.NewPipeline(s.ic.AdminGuard).Middleware()
	limited := middleware.NewPipeline(s.ic.RateLimit).Middleware()

	s.e.GET("/health", r.Health)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// uploads are served with nosniff so a file is never rendered as anything
	// but its stored type
	uploads := s.e.Group(s.cfg.UploadURL, echomw.Secure())
	uploads.Static("/", s.cfg.UploadDir)

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := s.e.Group("/api")
	{
		api.GET("/berita", r.ListBerita)
		api.GET("/berita/:slug", r.GetBeritaBySlug)

		api.GET("/galeri", r.ListGaleri)
		api.POST("/galeri", r.CreateGaleri, guard)

		api.POST("/laporan", r.CreateLaporan, limited)
		api.GET("/laporan", r.ListLaporan, guard)
		api.GET("/laporan/:id", r.GetLaporan, guard)
		api.PUT("/laporan/:id", r.UpdateLaporan, guard)
		api.DELETE("/laporan/:id", r.DeleteLaporan, guard)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", r.Login, limited)
			authGroup.POST("/logout", r.Logout)
			authGroup.GET("/me", r.Me, guard)
		}

		admin := api.Group("/admin", guard)
		{
			admin.GET("/dashboard", r.Dashboard)
			admin.POST("/upload", r.Upload)

			admin.GET("/berita", r.AdminListBerita)
			admin.POST("/berita", r.AdminCreateBerita)
			admin.GET("/berita/:id", r.AdminGetBerita)
			admin.PUT("/berita/:id", r.AdminUpdateBerita)
			admin.DELETE("/berita/:id", r.AdminDeleteBerita)

			admin.GET("/galeri", r.AdminListGaleri)
			admin.POST("/galeri", r.CreateGaleri)
			admin.GET("/galeri/:id", r.AdminGetGaleri)
			admin.PUT("/galeri/:id", r.AdminUpdateGaleri)
			admin.DELETE("/galeri/:id", r.AdminDeleteGaleri)

			admin.GET("/laporan", r.ListLaporan)
		}
	}

	s.e.GET(middleware.LoginPagePath, r.LoginPage)
	pages := s.e.Group("/admin", guard)
	{
		pages.GET("", r.DashboardPage)
	}
}

package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/middleware"
	"dinas_portal/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

const healthTimeout = 2 * time.Second

// Dashboard godoc
// @Summary Ringkasan dashboard
// @Description Statistik dan data terbaru dari berita, galeri dan laporan.
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response{data=dto.Dashboard}
// @Failure 401 {object} response.Response "Belum login"
// @Failure 500 {object} response.Response "Gagal mengambil data"
// @Security ApiKeyAuth
// @Router /api/admin/dashboard [get]
func (r *Routers) Dashboard(c echo.Context) error {
	const op = "http.routers.Dashboard"
	log := r.log.With(slog.String("op", op))

	d, err := r.DashboardService.Dashboard(c.Request().Context())
	if err != nil {
		log.Error("failed to load dashboard", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.FetchFailed("dashboard"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(d))
}

// Upload godoc
// @Summary Unggah media
// @Description Gambar atau video. Jenis file dibaca dari isinya.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Berkas gambar atau video"
// @Success 201 {object} response.Response{data=dto.UploadResult}
// @Failure 400 {object} response.Response "Berkas tidak valid"
// @Failure 401 {object} response.Response "Belum login"
// @Failure 413 {object} response.Response "Berkas terlalu besar"
// @Security ApiKeyAuth
// @Router /api/admin/upload [post]
func (r *Routers) Upload(c echo.Context) error {
	const op = "http.routers.Upload"
	log := r.log.With(slog.String("op", op))

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponse(response.MsgFileRequired))
	}

	res, err := r.UploadService.Upload(c.Request().Context(), file)
	if err != nil {
		return fail(c, log, err, response.MsgFileRequired)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(res))
}

// Health godoc
// @Summary Status layanan
// @Description Memeriksa database dan redis.
// @Tags system
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response "Ada layanan yang tidak tersedia"
// @Router /health [get]
func (r *Routers) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	checks := make(map[string]string, len(r.opts.HealthChecks))
	healthy := true

	for name, check := range r.opts.HealthChecks {
		if err := check(ctx); err != nil {
			r.log.Warn("health check failed", slog.String("check", name), sl.Err(err))
			checks[name] = "down"
			healthy = false
			continue
		}
		checks[name] = "up"
	}

	if !healthy {
		return c.JSON(http.StatusServiceUnavailable, response.Response{
			Success: false,
			Error:   response.MsgUnhealthy,
			Data:    map[string]interface{}{"status": "degraded", "checks": checks},
		})
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]interface{}{
		"status": "ok",
		"checks": checks,
	}))
}

// LoginPage
// GET /admin/login
func (r *Routers) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", map[string]interface{}{
		"Failed": c.QueryParam("error") != "",
	})
}

// DashboardPage renders the back-office overview.
// GET /admin
func (r *Routers) DashboardPage(c echo.Context) error {
	const op = "http.routers.DashboardPage"
	log := r.log.With(slog.String("op", op))

	claims, _ := middleware.ClaimsFromContext(c)

	d, err := r.DashboardService.Dashboard(c.Request().Context())
	if err != nil {
		log.Error("failed to load dashboard", sl.Err(err))
		return c.Render(http.StatusInternalServerError, "dashboard.html", map[string]interface{}{
			"User":  claims.Username,
			"Error": response.MsgInternal,
		})
	}

	return c.Render(http.StatusOK, "dashboard.html", map[string]interface{}{
		"User":      claims.Username,
		"Dashboard": d,
	})
}

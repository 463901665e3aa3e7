package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/lib/pagination"
	"dinas_portal/internal/storage"
	"dinas_portal/internal/transport/http/dto"
	"dinas_portal/internal/transport/http/dto/response"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type BeritaService interface {
	CreateBerita(ctx context.Context, req dto.CreateBeritaRequest) (models.Berita, error)
	UpdateBerita(ctx context.Context, id uuid.UUID, req dto.UpdateBeritaRequest) (models.Berita, error)
	DeleteBerita(ctx context.Context, id uuid.UUID) error
	GetBeritaByID(ctx context.Context, id uuid.UUID) (models.Berita, error)
	ViewBerita(ctx context.Context, slug string) (models.Berita, error)
	ListBerita(ctx context.Context, filter models.ListFilter) ([]models.Berita, int64, error)
	BeritaStats(ctx context.Context) (models.BeritaStats, error)
}

type GaleriService interface {
	CreateGaleri(ctx context.Context, req dto.CreateGaleriRequest) (models.Galeri, error)
	UpdateGaleri(ctx context.Context, id uuid.UUID, req dto.UpdateGaleriRequest) (models.Galeri, error)
	DeleteGaleri(ctx context.Context, id uuid.UUID) error
	GetGaleriByID(ctx context.Context, id uuid.UUID) (models.Galeri, error)
	ListGaleri(ctx context.Context, filter models.ListFilter) ([]models.Galeri, int64, error)
	GaleriStats(ctx context.Context) (models.GaleriStats, error)
}

type LaporanService interface {
	CreateLaporan(ctx context.Context, req dto.CreateLaporanRequest) (models.Laporan, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.LaporanStatus) (models.Laporan, error)
	DeleteLaporan(ctx context.Context, id uuid.UUID) error
	GetLaporanByID(ctx context.Context, id uuid.UUID) (models.Laporan, error)
	ListLaporan(ctx context.Context, filter models.ListFilter) ([]models.Laporan, int64, error)
	LaporanStats(ctx context.Context) (models.LaporanStats, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (models.Token, models.User, error)
}

type TokenService interface {
	ParseToken(ctx context.Context, token string) (models.TokenClaims, error)
	RevokeToken(ctx context.Context, claims models.TokenClaims) error
}

type DashboardService interface {
	Dashboard(ctx context.Context) (dto.Dashboard, error)
}

type UploadService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (dto.UploadResult, error)
}

// HealthCheck reports whether one backing service is reachable.
type HealthCheck func(ctx context.Context) error

type Options struct {
	CookieSecure   bool
	PublicMaxLimit int
	HealthChecks   map[string]HealthCheck
}

type Routers struct {
	log              *slog.Logger
	BeritaService    BeritaService
	GaleriService    GaleriService
	LaporanService   LaporanService
	AuthService      AuthService
	TokenService     TokenService
	DashboardService DashboardService
	UploadService    UploadService
	opts             Options
}

func NewRouter(
	log *slog.Logger,
	beritaService BeritaService,
	galeriService GaleriService,
	laporanService LaporanService,
	authService AuthService,
	tokenService TokenService,
	dashboardService DashboardService,
	uploadService UploadService,
	opts Options,
) *Routers {
	return &Routers{
		log:              log,
		BeritaService:    beritaService,
		GaleriService:    galeriService,
		LaporanService:   laporanService,
		AuthService:      authService,
		TokenService:     tokenService,
		DashboardService: dashboardService,
		UploadService:    uploadService,
		opts:             opts,
	}
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// bindAndValidate reads the request body into req. On failure it writes the
// 400 response itself and returns false.
func bindAndValidate(c echo.Context, log *slog.Logger, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		log.Warn("failed to bind request", slog.String("error", err.Error()))
		return false, c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, response.ErrorResponse(validationMessage(err)))
	}

	return true, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return fmt.Sprintf("%s: %s", response.MsgInvalidRequest, strings.Join(fields, ", "))
	}
	return response.MsgInvalidRequest
}

func parseID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// fail maps service errors onto status codes. Anything unknown is logged and
// hidden behind a generic 500.
func fail(c echo.Context, log *slog.Logger, err error, notFound string) error {
	var verr *models.ValidationError

	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, response.ErrorResponse(verr.Message))
	case errors.Is(err, storage.ErrNotFound):
		return c.JSON(http.StatusNotFound, response.ErrorResponse(notFound))
	case errors.Is(err, storage.ErrSlugExists):
		return c.JSON(http.StatusConflict, response.ErrorResponse(response.MsgSlugExists))
	case errors.Is(err, storage.ErrFileTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponse(response.MsgFileTooLarge))
	case errors.Is(err, storage.ErrInvalidFileType):
		return c.JSON(http.StatusBadRequest, response.ErrorResponse(response.MsgInvalidFileType))
	}

	log.Error("request failed", slog.String("error", err.Error()))

	return c.JSON(http.StatusInternalServerError, response.ErrInternal)
}

// listFilter reads page, limit and search. Resource specific filters are added by the caller.
func listFilter(c echo.Context, defLimit, maxLimit int) models.ListFilter {
	p := pagination.Parse(c.QueryParam("page"), c.QueryParam("limit"), defLimit, maxLimit)

	return models.ListFilter{
		Search: strings.TrimSpace(c.QueryParam("search")),
		Page:   p.Page,
		Limit:  p.Limit,
	}
}

func parsePublished(raw string) *bool {
	switch raw {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

func publishedOnly() *bool {
	v := true
	return &v
}

func isFormRequest(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ct, echo.MIMEApplicationForm) || strings.HasPrefix(ct, echo.MIMEMultipartForm)
}

package http

import (
	"log/slog"
	"net/http"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/lib/pagination"
	"dinas_portal/internal/transport/http/dto"
	"dinas_portal/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

func galeriType(raw string) models.GaleriType {
	if t := models.GaleriType(raw); t.Valid() {
		return t
	}
	return ""
}

// ListGaleri godoc
// @Summary Daftar galeri
// @Description Foto dan video yang sudah terbit.
// @Tags galeri
// @Produce json
// @Param page query int false "Halaman, mulai dari 1"
// @Param limit query int false "Jumlah data per halaman"
// @Param search query string false "Kata kunci pencarian"
// @Param type query string false "Jenis media" Enums(photo, video)
// @Success 200 {object} response.Response{data=[]models.Galeri}
// @Failure 500 {object} response.Response "Gagal mengambil data"
// @Router /api/galeri [get]
func (r *Routers) ListGaleri(c echo.Context) error {
	const op = "http.routers.ListGaleri"
	log := r.log.With(slog.String("op", op))

	filter := listFilter(c, pagination.DefaultGaleriLimit, r.opts.PublicMaxLimit)
	filter.Published = publishedOnly()
	filter.Type = galeriType(c.QueryParam("type"))

	items, total, err := r.GaleriService.ListGaleri(c.Request().Context(), filter)
	if err != nil {
		log.Error("failed to list galeri", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.FetchFailed("galeri"))
	}

	return c.JSON(http.StatusOK, response.ListResponse(items, pagination.NewMeta(filter.Page, filter.Limit, total), nil))
}

// AdminListGaleri godoc
// @Summary Daftar semua galeri
// @Description Semua item galeri beserta statistik.
// @Tags admin-galeri
// @Produce json
// @Param page query int false "Halaman, mulai dari 1"
// @Param limit query int false "Jumlah data per halaman"
// @Param search query string false "Kata kunci pencarian"
// @Param published query boolean false "Filter status terbit"
// @Param type query string false "Jenis media" Enums(photo, video)
// @Success 200 {object} response.Response{data=[]models.Galeri,stats=models.GaleriStats}
// @Failure 401 {object} response.Response "Belum login"
// @Failure 500 {object} response.Response "Gagal mengambil data"
// @Security ApiKeyAuth
// @Router /api/admin/galeri [get]
func (r *Routers) AdminListGaleri(c echo.Context) error {
	const op = "http.routers.AdminListGaleri"
	log := r.log.With(slog.String("op", op))

	ctx := c.Request().Context()

	filter := listFilter(c, pagination.DefaultGaleriLimit, pagination.AdminMaxLimit)
	filter.Published = parsePublished(c.QueryParam("published"))
	filter.Type = galeriType(c.QueryParam("type"))

	items, total, err := r.GaleriService.ListGaleri(ctx, filter)
	if err != nil {
		log.Error("failed to list galeri", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.FetchFailed("galeri"))
	}

	stats, err := r.GaleriService.GaleriStats(ctx)
	if err != nil {
		log.Error("failed to count galeri", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.FetchFailed("galeri"))
	}

	return c.JSON(http.StatusOK, response.ListResponse(items, pagination.NewMeta(filter.Page, filter.Limit, total), stats))
}

// AdminGetGaleri godoc
// @Summary Galeri berdasarkan ID
// @Tags admin-galeri
// @Produce json
// @Param id path string true "ID data" format(uuid)
// @Success 200 {object} response.Response{data=models.Galeri}
// @Failure 400 {object} response.Response "ID tidak valid"
// @Failure 401 {object} response.Response "Belum login"
// @Failure 404 {object} response.Response "Galeri tidak ditemukan"
// @Security ApiKeyAuth
// @Router /api/admin/galeri/{id} [get]
func (r *Routers) AdminGetGaleri(c echo.Context) error {
	const op = "http.routers.AdminGetGaleri"
	log := r.log.With(slog.String("op", op))

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	galeri, err := r.GaleriService.GetGaleriByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, log, err, response.MsgGaleriNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(galeri))
}

// CreateGaleri godoc
// @Summary Tambah item galeri
// @Description Juga tersedia di POST /api/galeri dengan penjagaan yang sama.
// @Tags admin-galeri
// @Accept json
// @Produce json
// @Param request body dto.CreateGaleriRequest true "Data galeri"
// @Success 201 {object} response.Response{data=models.Galeri}
// @Failure 400 {object} response.Response "Data tidak valid"
// @Failure 401 {object} response.Response "Belum login"
// @Failure 500 {object} response.Response "Kesalahan server"
// @Security ApiKeyAuth
// @Router /api/admin/galeri [post]
func (r *Routers) CreateGaleri(c echo.Context) error {
	const op = "http.routers.CreateGaleri"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateGaleriRequest
	if ok, err := bindAndValidate(c, log, &req); !ok {
		return err
	}

	galeri, err := r.GaleriService.CreateGaleri(c.Request().Context(), req)
	if err != nil {
		return fail(c, log, err, response.MsgGaleriNotFound)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(galeri))
}

// AdminUpdateGaleri godoc
// @Summary Ubah item galeri
// @Description Perubahan sebagian. Jenis yang tidak dikenal ditolak.
// @Tags admin-galeri
// @Accept json
// @Produce json
// @Param id path string true "ID data" format(uuid)
// @Param request body dto.UpdateGaleriRequest true "Field yang diubah"
// @Success 200 {object} response.Response{data=models.Galeri}
// @Failure 400 {object} response.Response "Data tidak valid"
// @Failure 401 {object} response.Response "Belum login"
// @Failure 404 {object} response.Response "Galeri tidak ditemukan"
// @Security ApiKeyAuth
// @Router /api/admin/galeri/{id} [put]
func (r *Routers) AdminUpdateGaleri(c echo.Context) error {
	const op = "http.routers.AdminUpdateGaleri"
	log := r.log.With(slog.String("op", op))

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	var req dto.UpdateGaleriRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	galeri, err := r.GaleriService.UpdateGaleri(c.Request().Context(), id, req)
	if err != nil {
		return fail(c, log, err, response.MsgGaleriNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(galeri))
}

// AdminDeleteGaleri godoc
// @Summary Hapus item galeri
// @Tags admin-galeri
// @Produce json
// @Param id path string true "ID data" format(uuid)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "ID tidak valid"
// @Failure 401 {object} response.Response "Belum login"
// @Failure 404 {object} response.Response "Galeri tidak ditemukan"
// @Security ApiKeyAuth
// @Router /api/admin/galeri/{id} [delete]
func (r *Routers) AdminDeleteGaleri(c echo.Context) error {
	const op = "http.routers.AdminDeleteGaleri"
	log := r.log.With(slog.String("op", op))

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	if err := r.GaleriService.DeleteGaleri(c.Request().Context(), id); err != nil {
		return fail(c, log, err, response.MsgGaleriNotFound)
	}

	return c.JSON(http.StatusOK, response.MessageResponse(response.MsgGaleriDeleted))
}

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

// CreateLaporan godoc
// @Summary Kirim laporan
// @Description Laporan masyarakat, selalu berstatus pending. Dibatasi per alamat IP.
// @Tags laporan
// @Accept json
// @Produce json
// @Param request body dto.CreateLaporanRequest true "Isi laporan"
// @Success 201 {object} response.Response{data=models.Laporan}
// @Failure 400 {object} response.Response "Data tidak valid"
// @Failure 429 {object} response.Response "Terlalu banyak permintaan"
// @Failure 500 {object} response.Response "Kesalahan server"
// @Router /api/laporan [post]
func (r *Routers) CreateLaporan(c echo.Context) error {
	const op = "http.routers.CreateLaporan"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateLaporanRequest
	if ok, err := bindAndValidate(c, log, &req); !ok {
		return err
	}

	laporan, err := r.LaporanService.CreateLaporan(c.Request().Context(), req)
	if err != nil {
		return fail(c, log, err, response.MsgLaporanNotFound)
	}

	return c.JSON(http.StatusCreated, response.Response{
		Success: true,
		Data:    laporan,
		Message: response.MsgLaporanCreated,
	})
}

// ListLaporan godoc
// @Summary Daftar laporan
// @Description Juga tersedia di /api/admin/laporan.
// @Tags laporan
// @Produce json
// @Param page query int false "Halaman, mulai dari 1"
// @Param limit query int false "Jumlah data per halaman"
// @Param search query string false "Kata kunci pencarian"
// @Param status query string false "Filter status" Enums(pending, in_progress, resolved, closed)
// @Success 200 {object} response.Response{data=[]models.Laporan,stats=models.LaporanStats}
// @Failure 401 {object} response.Response "Belum login"
// @Failure 500 {object} response.Response "Gagal mengambil data"
// @Security ApiKeyAuth
// @Router /api/laporan [get]
func (r *Routers) ListLaporan(c echo.Context) error {
	const op = "http.routers.ListLaporan"
	log := r.log.With(slog.String("op", op))

	ctx := c.Request().Context()

	filter := listFilter(c, pagination.DefaultLimit, pagination.AdminMaxLimit)
	if st := models.LaporanStatus(c.QueryParam("status")); st.Valid() {
		filter.Status = st
	}

	items, total, err := r.LaporanService.ListLaporan(ctx, filter)
	if err != nil {
		log.Error("failed to list laporan", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.FetchFailed("laporan"))
	}

	stats, err := r.LaporanService.LaporanStats(ctx)
	if err != nil {
		log.Error("failed to count laporan", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.FetchFailed("laporan"))
	}

	return c.JSON(http.StatusOK, response.ListResponse(items, pagination.NewMeta(filter.Page, filter.Limit, total), stats))
}

// GetLaporan godoc
// @Summary Laporan berdasarkan ID
// @Tags laporan
// @Produce json
// @Param id path string true "ID data" format(uuid)
// @Success 200 {object} response.Response{data=models.Laporan}
// @Failure 400 {object} response.Response "ID tidak valid"
// @Failure 401 {object} response.Response "Belum login"
// @Failure 404 {object} response.Response "Laporan tidak ditemukan"
// @Security ApiKeyAuth
// @Router /api/laporan/{id} [get]
func (r *Routers) GetLaporan(c echo.Context) error {
	const op = "http.routers.GetLaporan"
	log := r.log.With(slog.String("op", op))

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	laporan, err := r.LaporanService.GetLaporanByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, log, err, response.MsgLaporanNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(laporan))
}

// UpdateLaporan godoc
// @Summary Ubah status laporan
// @Description Hanya status yang dapat diubah.
// @Tags laporan
// @Accept json
// @Produce json
// @Param id path string true "ID data" format(uuid)
// @Param request body dto.UpdateLaporanRequest true "Status baru"
// @Success 200 {object} response.Response{data=models.Laporan}
// @Failure 400 {object} response.Response "Status tidak valid"
// @Failure 401 {object} response.Response "Belum login"
// @Failure 404 {object} response.Response "Laporan tidak ditemukan"
// @Security ApiKeyAuth
// @Router /api/laporan/{id} [put]
func (r *Routers) UpdateLaporan(c echo.Context) error {
	const op = "http.routers.UpdateLaporan"
	log := r.log.With(slog.String("op", op))

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	var req dto.UpdateLaporanRequest
	if ok, err := bindAndValidate(c, log, &req); !ok {
		return err
	}

	laporan, err := r.LaporanService.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return fail(c, log, err, response.MsgLaporanNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(laporan))
}

// DeleteLaporan godoc
// @Summary Hapus laporan
// @Tags laporan
// @Produce json
// @Param id path string true "ID data" format(uuid)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "ID tidak valid"
// @Failure 401 {object} response.Response "Belum login"
// @Failure 404 {object} response.Response "Laporan tidak ditemukan"
// @Security ApiKeyAuth
// @Router /api/laporan/{id} [delete]
func (r *Routers) DeleteLaporan(c echo.Context) error {
	const op = "http.routers.DeleteLaporan"
	log := r.log.With(slog.String("op", op))

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	if err := r.LaporanService.DeleteLaporan(c.Request().Context(), id); err != nil {
		return fail(c, log, err, response.MsgLaporanNotFound)
	}

	return c.JSON(http.StatusOK, response.MessageResponse(response.MsgLaporanDeleted))
}

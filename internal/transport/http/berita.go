package http

import (
	"log/slog"
	"net/http"

	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/lib/pagination"
	"dinas_portal/internal/transport/http/dto"
	"dinas_portal/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListBerita godoc
// @Summary Daftar berita
// @Description Berita yang sudah terbit, terbaru di atas.
// @Tags berita
// @Produce json
// @Param page query int false "Halaman, mulai dari 1"
// @Param limit query int false "Jumlah data per halaman"
// @Param search query string false "Kata kunci pencarian"
// @Success 200 {object} response.Response{data=[]models.Berita}
// @Failure 500 {object} response.Response "Gagal mengambil data"
// @Router /api/berita [get]
func (r *Routers) ListBerita(c echo.Context) error {
	const op = "http.routers.ListBerita"
	log := r.log.With(slog.String("op", op))

	filter := listFilter(c, pagination.DefaultLimit, r.opts.PublicMaxLimit)
	filter.Published = publishedOnly()

	items, total, err := r.BeritaService.ListBerita(c.Request().Context(), filter)
	if err != nil {
		log.Error("failed to list berita", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.FetchFailed("berita"))
	}

	return c.JSON(http.StatusOK, response.ListResponse(items, pagination.NewMeta(filter.Page, filter.Limit, total), nil))
}

// GetBeritaBySlug godoc
// @Summary Detail berita
// @Description Mengembalikan satu berita terbit dan menambah jumlah dilihat.
// @Tags berita
// @Produce json
// @Param slug path string true "Slug berita"
// @Success 200 {object} response.Response{data=models.Berita}
// @Failure 404 {object} response.Response "Berita tidak ditemukan"
// @Failure 500 {object} response.Response "Kesalahan server"
// @Router /api/berita/{slug} [get]
func (r *Routers) GetBeritaBySlug(c echo.Context) error {
	const op = "http.routers.GetBeritaBySlug"
	log := r.log.With(slog.String("op", op), slog.String("slug", c.Param("slug")))

	berita, err := r.BeritaService.ViewBerita(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return fail(c, log, err, response.MsgBeritaNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(berita))
}

// AdminListBerita godoc
// @Summary Daftar semua berita
// @Description Draf dan berita terbit beserta statistik.
// @Tags admin-berita
// @Produce json
// @Param page query int false "Halaman, mulai dari 1"
// @Param limit query int false "Jumlah data per halaman"
// @Param search query string false "Kata kunci pencarian"
// @Param published query boolean false "Filter status terbit"
// @Success 200 {object} response.Response{data=[]models.Berita,stats=models.BeritaStats}
// @Failure 401 {object} response.Response "Belum login"
// @Failure 500 {object} response.Response "Gagal mengambil data"
// @Security ApiKeyAuth
// @Router /api/admin/berita [get]
func (r *Routers) AdminListBerita(c echo.Context) error {
	const op = "http.routers.AdminListBerita"
	log := r.log.With(slog.String("op", op))

	ctx := c.Request().Context()

	filter := listFilter(c, pagination.DefaultLimit, pagination.AdminMaxLimit)
	filter.Published = parsePublished(c.QueryParam("published"))

	items, total, err := r.BeritaService.ListBerita(ctx, filter)
	if err != nil {
		log.Error("failed to list berita", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.FetchFailed("berita"))
	}

	stats, err := r.BeritaService.BeritaStats(ctx)
	if err != nil {
		log.Error("failed to count berita", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.FetchFailed("berita"))
	}

	return c.JSON(http.StatusOK, response.ListResponse(items, pagination.NewMeta(filter.Page, filter.Limit, total), stats))
}

// AdminGetBerita godoc
// @Summary Berita berdasarkan ID
// @Tags admin-berita
// @Produce json
// @Param id path string true "ID data" format(uuid)
// @Success 200 {object} response.Response{data=models.Berita}
// @Failure 400 {object} response.Response "ID tidak valid"
// @Failure 401 {object} response.Response "Belum login"
// @Failure 404 {object} response.Response "Berita tidak ditemukan"
// @Security ApiKeyAuth
// @Router /api/admin/berita/{id} [get]
func (r *Routers) AdminGetBerita(c echo.Context) error {
	const op = "http.routers.AdminGetBerita"
	log := r.log.With(slog.String("op", op))

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	berita, err := r.BeritaService.GetBeritaByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, log, err, response.MsgBeritaNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(berita))
}

// AdminCreateBerita godoc
// @Summary Buat berita
// @Description Slug dibentuk dari judul. Konten HTML dibersihkan.
// @Tags admin-berita
// @Accept json
// @Produce json
// @Param request body dto.CreateBeritaRequest true "Data berita"
// @Success 201 {object} response.Response{data=models.Berita}
// @Failure 400 {object} response.Response "Data tidak valid"
// @Failure 401 {object} response.Response "Belum login"
// @Failure 409 {object} response.Response "Slug sudah digunakan"
// @Failure 500 {object} response.Response "Kesalahan server"
// @Security ApiKeyAuth
// @Router /api/admin/berita [post]
func (r *Routers) AdminCreateBerita(c echo.Context) error {
	const op = "http.routers.AdminCreateBerita"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateBeritaRequest
	if ok, err := bindAndValidate(c, log, &req); !ok {
		return err
	}

	berita, err := r.BeritaService.CreateBerita(c.Request().Context(), req)
	if err != nil {
		return fail(c, log, err, response.MsgBeritaNotFound)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(berita))
}

// AdminUpdateBerita godoc
// @Summary Ubah berita
// @Description Perubahan sebagian. Field kosong diabaikan, slug tidak berubah.
// @Tags admin-berita
// @Accept json
// @Produce json
// @Param id path string true "ID data" format(uuid)
// @Param request body dto.UpdateBeritaRequest true "Field yang diubah"
// @Success 200 {object} response.Response{data=models.Berita}
// @Failure 400 {object} response.Response "Data tidak valid"
// @Failure 401 {object} response.Response "Belum login"
// @Failure 404 {object} response.Response "Berita tidak ditemukan"
// @Security ApiKeyAuth
// @Router /api/admin/berita/{id} [put]
func (r *Routers) AdminUpdateBerita(c echo.Context) error {
	const op = "http.routers.AdminUpdateBerita"
	log := r.log.With(slog.String("op", op))

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	var req dto.UpdateBeritaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	berita, err := r.BeritaService.UpdateBerita(c.Request().Context(), id, req)
	if err != nil {
		return fail(c, log, err, response.MsgBeritaNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(berita))
}

// AdminDeleteBerita godoc
// @Summary Hapus berita
// @Tags admin-berita
// @Produce json
// @Param id path string true "ID data" format(uuid)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "ID tidak valid"
// @Failure 401 {object} response.Response "Belum login"
// @Failure 404 {object} response.Response "Berita tidak ditemukan"
// @Security ApiKeyAuth
// @Router /api/admin/berita/{id} [delete]
func (r *Routers) AdminDeleteBerita(c echo.Context) error {
	const op = "http.routers.AdminDeleteBerita"
	log := r.log.With(slog.String("op", op))

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	if err := r.BeritaService.DeleteBerita(c.Request().Context(), id); err != nil {
		return fail(c, log, err, response.MsgBeritaNotFound)
	}

	return c.JSON(http.StatusOK, response.MessageResponse(response.MsgBeritaDeleted))
}

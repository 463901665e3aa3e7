package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dinas_portal/internal/lib/logger/handlers/slogdiscard"
	"dinas_portal/internal/storage"
	filestorage "dinas_portal/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func newTestService(t *testing.T, maxSize int64) (*UploadService, string) {
	dir := t.TempDir()
	fs, err := filestorage.NewLocalFileStorage(dir, "/uploads")
	require.NoError(t, err)
	return NewUploadService(slogdiscard.NewDiscardLogger(), fs, maxSize), dir
}

func TestUploadService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("image", func(t *testing.T) {
		service, dir := newTestService(t, 1<<20)

		res, err := service.Upload(ctx, fileHeader(t, "Foto Kegiatan.PNG", pngHeader))
		require.NoError(t, err)

		assert.Equal(t, "image/png", res.MimeType)
		assert.True(t, strings.HasPrefix(res.Path, "images/"))
		assert.True(t, strings.HasSuffix(res.Path, ".png"))
		assert.Equal(t, "/uploads/"+res.Path, res.URL)
		assert.Equal(t, int64(len(pngHeader)), res.Size)

		_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(res.Path)))
		assert.NoError(t, err)
	})

	t.Run("rejects text", func(t *testing.T) {
		service, _ := newTestService(t, 1<<20)

		_, err := service.Upload(ctx, fileHeader(t, "gambar.png", []byte("bukan gambar")))
		assert.ErrorIs(t, err, storage.ErrInvalidFileType)
	})

	t.Run("extension follows content", func(t *testing.T) {
		service, _ := newTestService(t, 1<<20)

		res, err := service.Upload(ctx, fileHeader(t, "evil.html", []byte("GIF89a<html><script>alert(1)</script></html>")))
		require.NoError(t, err)

		assert.Equal(t, "image/gif", res.MimeType)
		assert.True(t, strings.HasSuffix(res.Path, ".gif"))
		assert.NotContains(t, res.Path, ".html")
	})

	t.Run("rejects svg", func(t *testing.T) {
		service, _ := newTestService(t, 1<<20)

		svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
		_, err := service.Upload(ctx, fileHeader(t, "logo.svg", svg))
		assert.ErrorIs(t, err, storage.ErrInvalidFileType)
	})

	t.Run("too large", func(t *testing.T) {
		service, _ := newTestService(t, 4)

		_, err := service.Upload(ctx, fileHeader(t, "foto.png", pngHeader))
		assert.ErrorIs(t, err, storage.ErrFileTooLarge)
	})
}

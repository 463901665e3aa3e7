package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/storage"
	filestorage "dinas_portal/internal/storage/filestorage"
	"dinas_portal/internal/transport/http/dto"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

type UploadService struct {
	log         *slog.Logger
	fileStorage filestorage.FileStorage
	maxSize     int64
}

func NewUploadService(log *slog.Logger, fileStorage filestorage.FileStorage, maxSize int64) *UploadService {
	return &UploadService{
		log:         log,
		fileStorage: fileStorage,
		maxSize:     maxSize,
	}
}

// Upload stores an image or video under a generated name and returns its public URL.
// The content type is sniffed from the file itself, the client header is ignored.
func (s *UploadService) Upload(ctx context.Context, file *multipart.FileHeader) (dto.UploadResult, error) {
	const op = "upload_service.Upload"

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", file.Filename),
		slog.Int64("size", file.Size),
	)

	if s.maxSize > 0 && file.Size > s.maxSize {
		log.Warn("file too large")
		return dto.UploadResult{}, fmt.Errorf("%s: %w", op, storage.ErrFileTooLarge)
	}

	mime, err := detect(file)
	if err != nil {
		log.Error("failed to detect content type", sl.Err(err))
		return dto.UploadResult{}, fmt.Errorf("%s: %w", op, err)
	}

	kind := mediaKind(mime.String())
	if kind == "" {
		log.Warn("rejected content type", slog.String("mime", mime.String()))
		return dto.UploadResult{}, fmt.Errorf("%s: %w", op, storage.ErrInvalidFileType)
	}

	// the client name is never trusted for the extension
	ext := mime.Extension()

	now := time.Now().UTC()
	subPath := path.Join(kind, now.Format("2006"), now.Format("01"))

	relPath, size, err := s.fileStorage.Save(ctx, file, subPath, uuid.NewString()+ext)
	if err != nil {
		log.Error("failed to save file", sl.Err(err))
		return dto.UploadResult{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("file uploaded", slog.String("path", relPath))

	return dto.UploadResult{
		URL:      s.fileStorage.URL(relPath),
		Path:     relPath,
		Size:     size,
		MimeType: mime.String(),
	}, nil
}

func detect(file *multipart.FileHeader) (*mimetype.MIME, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return mimetype.DetectReader(src)
}

// svg is refused, it can carry script.
func mediaKind(mime string) string {
	switch {
	case mime == "image/svg+xml":
		return ""
	case strings.HasPrefix(mime, "image/"):
		return "images"
	case strings.HasPrefix(mime, "video/"):
		return "videos"
	default:
		return ""
	}
}

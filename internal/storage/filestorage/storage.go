package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type FileStorage interface {
	Save(ctx context.Context, file *multipart.FileHeader, subPath, name string) (relPath string, size int64, err error)
	URL(relPath string) string
	GetBaseDir() string
}

// LocalFileStorage keeps uploads on the local disk under baseDir. They are
// served back under baseURL.
type LocalFileStorage struct {
	baseDir string
	baseURL string
}

func NewLocalFileStorage(baseDir, baseURL string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save copies the uploaded file to baseDir/subPath/name and returns the path
// relative to baseDir. The copy stops at the next read once ctx is cancelled
// and the partial file is removed.
func (s *LocalFileStorage) Save(ctx context.Context, file *multipart.FileHeader, subPath, name string) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if name == "" {
		name = file.Filename
	}
	name = filepath.Base(name)
	subPath = filepath.Clean("/" + subPath)[1:]

	fullPath := filepath.Join(s.baseDir, subPath, name)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create directories: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, ctxReader{ctx: ctx, r: src})
	if err != nil {
		_ = os.Remove(fullPath)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", 0, ctxErr
		}
		return "", 0, fmt.Errorf("failed to copy file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subPath, name)), size, nil
}

// URL returns the public address of a stored file.
func (s *LocalFileStorage) URL(relPath string) string {
	return s.baseURL + path.Clean("/"+filepath.ToSlash(relPath))
}

func (s *LocalFileStorage) GetBaseDir() string {
	return s.baseDir
}

// ctxReader fails reads once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}

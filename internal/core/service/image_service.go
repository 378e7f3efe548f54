package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/shoplite/shoplite-api/internal/core/domain"
	"github.com/shoplite/shoplite-api/internal/core/ports"
)

// MaxImageSize caps uploads at 5 MiB.
const MaxImageSize = 5 << 20

var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

// ImageService validates uploads and stores them under generated names so
// client-supplied filenames never reach the filesystem.
type ImageService struct {
	store ports.ImageStore
}

func NewImageService(store ports.ImageStore) *ImageService {
	return &ImageService{store: store}
}

func (s *ImageService) Upload(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", domain.Validationf("unsupported image type %q", ext)
	}
	if size <= 0 {
		return "", domain.Validationf("image is empty")
	}
	if size > MaxImageSize {
		return "", domain.Validationf("image exceeds the %d byte limit", MaxImageSize)
	}

	name := uuid.NewString() + ext
	if err := s.store.Save(ctx, name, io.LimitReader(r, MaxImageSize)); err != nil {
		return "", err
	}
	return name, nil
}

func (s *ImageService) Delete(ctx context.Context, name string) error {
	// Reject anything that could traverse out of the upload dir.
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return domain.Validationf("invalid image name")
	}
	return s.store.Remove(ctx, name)
}

package ports

import (
	"context"
	"io"
)

// ImageStore persists uploaded image bytes under an opaque name.
type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader) error
	Remove(ctx context.Context, name string) error
}

type ImageService interface {
	// Upload stores the file under a generated name derived from the
	// original extension and returns the public path.
	Upload(ctx context.Context, filename string, size int64, r io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
}

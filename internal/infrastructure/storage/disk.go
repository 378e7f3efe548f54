// Package storage persists uploaded images on the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

// DiskStore writes image files under a single directory. Names are generated
// upstream, so the store never sees client-controlled paths.
type DiskStore struct {
	dir string
}

// NewDiskStore ensures the directory exists and returns the store.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (d *DiskStore) Save(_ context.Context, name string, r io.Reader) error {
	path := filepath.Join(d.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close image file: %w", err)
	}
	return nil
}

func (d *DiskStore) Remove(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(d.dir, name))
	if os.IsNotExist(err) {
		return domain.ErrImageNotFound
	}
	if err != nil {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}

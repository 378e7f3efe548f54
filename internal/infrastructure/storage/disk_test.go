package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

func TestDiskStore_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "img.png", bytes.NewReader([]byte("pixels"))); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "img.png"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "pixels" {
		t.Errorf("content: got %q", data)
	}

	// Generated names never collide in practice; refusing an overwrite keeps
	// that assumption checked.
	if err := store.Save(ctx, "img.png", bytes.NewReader([]byte("other"))); err == nil {
		t.Fatalf("expected error for existing file")
	}

	if err := store.Remove(ctx, "img.png"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "img.png")); !os.IsNotExist(err) {
		t.Fatalf("file still present: %v", err)
	}
}

func TestDiskStore_RemoveMissing(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Remove(context.Background(), "ghost.png"); !errors.Is(err, domain.ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}

func TestDiskStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	if _, err := NewDiskStore(dir); err != nil {
		t.Fatalf("new store: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("upload dir not created: %v", err)
	}
}

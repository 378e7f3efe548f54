package sqlite

import (
	"context"
	"testing"
)

func TestSettingsRepository_UpsertAndAll(t *testing.T) {
	store := newTestStore(t)
	repo := NewSettingsRepository(store)
	ctx := context.Background()

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all (empty): %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty settings, got %v", all)
	}

	if err := repo.Upsert(ctx, map[string]string{
		"store_name": "Shoplite",
		"currency":   "USD",
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Second upsert overwrites one key and adds another.
	if err := repo.Upsert(ctx, map[string]string{
		"currency": "EUR",
		"tax_rate": "0.21",
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	all, err = repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	want := map[string]string{
		"store_name": "Shoplite",
		"currency":   "EUR",
		"tax_rate":   "0.21",
	}
	if len(all) != len(want) {
		t.Fatalf("got %v, want %v", all, want)
	}
	for k, v := range want {
		if all[k] != v {
			t.Errorf("%s: got %q, want %q", k, all[k], v)
		}
	}
}

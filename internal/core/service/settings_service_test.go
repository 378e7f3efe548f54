package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

type stubSettingsRepo struct {
	values map[string]string
}

func newStubSettingsRepo() *stubSettingsRepo {
	return &stubSettingsRepo{values: make(map[string]string)}
}

func (r *stubSettingsRepo) All(_ context.Context) (map[string]string, error) {
	return r.values, nil
}

func (r *stubSettingsRepo) Upsert(_ context.Context, values map[string]string) error {
	for k, v := range values {
		r.values[k] = v
	}
	return nil
}

func TestSettingsService_Update(t *testing.T) {
	repo := newStubSettingsRepo()
	svc := NewSettingsService(repo)
	ctx := context.Background()

	if err := svc.Update(ctx, map[string]string{"store_name": "Shoplite"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	all, err := svc.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if all["store_name"] != "Shoplite" {
		t.Errorf("store_name: got %q", all["store_name"])
	}
}

func TestSettingsService_Update_Validation(t *testing.T) {
	svc := NewSettingsService(newStubSettingsRepo())
	ctx := context.Background()

	tests := []struct {
		name   string
		values map[string]string
	}{
		{"empty map", map[string]string{}},
		{"empty key", map[string]string{"": "x"}},
		{"oversized value", map[string]string{"banner": strings.Repeat("x", maxSettingValueLen+1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Update(ctx, tt.values); !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

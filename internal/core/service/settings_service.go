package service

import (
	"context"

	"github.com/shoplite/shoplite-api/internal/core/domain"
	"github.com/shoplite/shoplite-api/internal/core/ports"
)

const maxSettingValueLen = 4096

// SettingsService manages the store-wide key/value configuration.
type SettingsService struct {
	repo ports.SettingsRepository
}

func NewSettingsService(repo ports.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) All(ctx context.Context) (map[string]string, error) {
	return s.repo.All(ctx)
}

func (s *SettingsService) Update(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return domain.Validationf("no settings provided")
	}
	for k, v := range values {
		if k == "" {
			return domain.Validationf("setting keys cannot be empty")
		}
		if len(v) > maxSettingValueLen {
			return domain.Validationf("setting %q exceeds the maximum value length", k)
		}
	}
	return s.repo.Upsert(ctx, values)
}

package ports

import "context"

// SettingsRepository persists the store-wide key/value configuration.
type SettingsRepository interface {
	All(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, values map[string]string) error
}

type SettingsService interface {
	All(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, values map[string]string) error
}

package sqlite

import (
	"context"
	"fmt"
	"sort"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

type SettingsRepository struct {
	store *Store
}

func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

func (r *SettingsRepository) All(ctx context.Context) (map[string]string, error) {
	settings := make([]*domain.Setting, 0)
	if err := r.store.DB().NewSelect().Model(&settings).Scan(ctx); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	return out, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	// Deterministic write order keeps lock acquisition stable.
	sort.Strings(keys)

	rows := make([]*domain.Setting, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, &domain.Setting{Key: k, Value: values[k]})
	}

	_, err := r.store.DB().NewInsert().
		Model(&rows).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

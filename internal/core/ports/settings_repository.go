package ports

import "context"

// SettingsRepository is a flat key-value store for admin-tunable settings.
type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	// Upsert inserts or overwrites one key.
	Upsert(ctx context.Context, key, value string) error
}

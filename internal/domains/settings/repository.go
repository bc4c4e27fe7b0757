package settings

import "context"

// Repository is the persistence contract for the keyed settings table.
type Repository interface {
	// Get returns the setting or ErrSettingNotFound.
	Get(ctx context.Context, key string) (*Setting, error)

	// Set upserts the value and refreshes updated_at.
	Set(ctx context.Context, key string, value interface{}) error
}

package media

import "context"

// Service is the upload relay. Validation happens before any storage
// call; the returned asset carries the authoritative post-normalization
// dimensions.
type Service interface {
	// Upload validates, normalizes and stores an image.
	// Rejects with ErrNoFile, ErrNotAnImage or ErrTooLarge before touching
	// storage.
	Upload(ctx context.Context, filename, contentType string, data []byte) (*Asset, error)

	// Delete removes the asset and its generated variants by public id.
	// Deleting an unknown id succeeds (the storage remove is idempotent).
	Delete(ctx context.Context, publicID string) error

	// GenerateVariants builds the smaller display sizes for a stored asset.
	// Invoked from the worker, not the request path.
	GenerateVariants(ctx context.Context, key, publicID string) error

	// CleanupOrphans removes stored objects older than the cutoff that no
	// persisted record references. Returns how many objects were removed.
	CleanupOrphans(ctx context.Context, olderThanHours int) (int, error)
}

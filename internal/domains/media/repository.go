package media

import "context"

// Repository exposes the asset references held by the persisted
// collections. Businesses, blog posts and registrations all store bare
// URL strings; the orphan sweep needs them to decide which stored
// objects are still live.
type Repository interface {
	GetReferencedURLs(ctx context.Context) ([]string, error)
}

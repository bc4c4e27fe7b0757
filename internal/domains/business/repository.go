package business

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// List returns all businesses, newest first.
	List(ctx context.Context) ([]*Business, error)

	// Create persists a new business and returns the stored row.
	Create(ctx context.Context, b *Business) (*Business, error)

	// Update overwrites only the provided fields and refreshes
	// updated_at. Unknown id yields ErrBusinessNotFound.
	Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Business, error)

	// Delete removes a business. Unknown id yields ErrBusinessNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}

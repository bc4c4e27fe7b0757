package registration

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// List returns all registrations, newest first.
	List(ctx context.Context) ([]*Registration, error)

	Create(ctx context.Context, reg *Registration) (*Registration, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Registration, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

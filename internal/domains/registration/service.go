package registration

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// List is fail-open: on a read failure it returns an empty slice and
	// degraded=true.
	List(ctx context.Context) ([]*Registration, bool)

	Create(ctx context.Context, req *CreateRequest) (*Registration, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Registration, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

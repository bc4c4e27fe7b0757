package blog

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// List is fail-open: on a read failure it returns an empty slice and
	// degraded=true. Post bodies come back with rendered HTML.
	List(ctx context.Context) ([]*PostResponse, bool)

	Create(ctx context.Context, req *CreateRequest) (*PostResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*PostResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

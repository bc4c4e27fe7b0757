package blog

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// List returns all posts ordered by event date, newest first.
	List(ctx context.Context) ([]*Post, error)

	Create(ctx context.Context, p *Post) (*Post, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package program

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Program, error)
	Create(ctx context.Context, p *Program) (*Program, error)
	Update(ctx context.Context, id string, req *UpdateRequest) (*Program, error)
	Delete(ctx context.Context, id string) error
}

package program

import "context"

type Service interface {
	// List returns stored programs, or the fixed defaults when the
	// collection is empty (without persisting them). degraded=true marks
	// a fail-open read that also answered the defaults.
	List(ctx context.Context) ([]*Program, bool)

	// Defaults is pure: the three built-in programs, fixed order, no I/O.
	Defaults() []*Program

	// Seed persists the defaults into an empty collection. Deliberate
	// operator action; refuses with ErrAlreadySeeded otherwise.
	Seed(ctx context.Context) ([]*Program, error)

	Create(ctx context.Context, req *CreateRequest) (*Program, error)
	Update(ctx context.Context, id string, req *UpdateRequest) (*Program, error)
	Delete(ctx context.Context, id string) error
}

package service

import (
	"context"

	"github.com/google/uuid"

	p "studio-backend/internal/domains/program"
	"studio-backend/pkg/logger"
)

type programService struct {
	repo p.Repository
}

func NewProgramService(repo p.Repository) p.Service {
	return &programService{repo: repo}
}

// List answers stored programs; an empty collection falls back to the
// built-in defaults without writing them. A failed read also answers the
// defaults but reports degraded=true so callers can tell the cases apart.
func (s *programService) List(ctx context.Context) ([]*p.Program, bool) {
	programs, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("program listing degraded to defaults", err)
		return p.Defaults(), true
	}

	if len(programs) == 0 {
		return p.Defaults(), false
	}

	return programs, false
}

func (s *programService) Defaults() []*p.Program {
	return p.Defaults()
}

func (s *programService) Seed(ctx context.Context) ([]*p.Program, error) {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, p.ErrAlreadySeeded
	}

	var seeded []*p.Program
	for _, def := range p.Defaults() {
		created, err := s.repo.Create(ctx, def)
		if err != nil {
			return nil, err
		}
		seeded = append(seeded, created)
	}

	return seeded, nil
}

func (s *programService) Create(ctx context.Context, req *p.CreateRequest) (*p.Program, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prog := &p.Program{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		PrimaryColor: req.PrimaryColor,
		AccentColors: req.AccentColors,
		Features:     req.Features,
	}

	if prog.AccentColors == nil {
		prog.AccentColors = []string{}
	}
	if prog.Features == nil {
		prog.Features = []string{}
	}

	return s.repo.Create(ctx, prog)
}

func (s *programService) Update(ctx context.Context, id string, req *p.UpdateRequest) (*p.Program, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *programService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

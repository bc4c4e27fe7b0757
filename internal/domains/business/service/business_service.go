package service

import (
	"context"

	"github.com/google/uuid"

	b "studio-backend/internal/domains/business"
	"studio-backend/pkg/logger"
)

type businessService struct {
	repo b.Repository
}

func NewBusinessService(repo b.Repository) b.Service {
	return &businessService{repo: repo}
}

func (s *businessService) List(ctx context.Context) ([]*b.Business, bool) {
	businesses, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("business listing degraded to empty result", err)
		return []*b.Business{}, true
	}
	if businesses == nil {
		businesses = []*b.Business{}
	}
	return businesses, false
}

func (s *businessService) Create(ctx context.Context, req *b.CreateRequest) (*b.Business, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	biz := &b.Business{
		ID:          uuid.New(),
		Name:        req.Name,
		Logo:        req.Logo,
		Category:    req.Category,
		Description: req.Description,
		IsNew:       req.IsNew,
	}

	return s.repo.Create(ctx, biz)
}

func (s *businessService) Update(ctx context.Context, id uuid.UUID, req *b.UpdateRequest) (*b.Business, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *businessService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

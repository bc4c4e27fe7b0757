package service

import (
	"context"

	"github.com/google/uuid"

	reg "studio-backend/internal/domains/registration"
	"studio-backend/pkg/logger"
)

type registrationService struct {
	repo reg.Repository
}

func NewRegistrationService(repo reg.Repository) reg.Service {
	return &registrationService{repo: repo}
}

func (s *registrationService) List(ctx context.Context) ([]*reg.Registration, bool) {
	registrations, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("registration listing degraded to empty result", err)
		return []*reg.Registration{}, true
	}
	if registrations == nil {
		registrations = []*reg.Registration{}
	}
	return registrations, false
}

func (s *registrationService) Create(ctx context.Context, req *reg.CreateRequest) (*reg.Registration, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r := &reg.Registration{
		ID:                  uuid.New(),
		FullName:            req.FullName,
		PhoneNumber:         req.PhoneNumber,
		Country:             req.Country,
		Industry:            req.Industry,
		BusinessIdea:        req.BusinessIdea,
		OpenToCollaboration: req.OpenToCollaboration,
		BornAgain:           req.BornAgain,
		Available8Weeks:     req.Available8Weeks,
		TimePreference:      req.TimePreference,
		DaysPreference:      req.DaysPreference,
		PaymentMethod:       req.PaymentMethod,
		PaymentProof:        req.PaymentProof,
	}

	if r.DaysPreference == nil {
		r.DaysPreference = []string{}
	}

	return s.repo.Create(ctx, r)
}

func (s *registrationService) Update(ctx context.Context, id uuid.UUID, req *reg.UpdateRequest) (*reg.Registration, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *registrationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

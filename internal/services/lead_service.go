package services

import (
	"context"
	"database/sql"
	"errors"

	"essencia/internal/domain"
	"essencia/internal/repos"
	"essencia/internal/validate"
)

type LeadService struct {
	Leads LeadStore
}

func NewLeadService(leads LeadStore) *LeadService { return &LeadService{Leads: leads} }

func (s *LeadService) List(ctx context.Context) ([]domain.Lead, error) {
	return s.Leads.All(ctx)
}

// Register creates a lead unless the phone is already known. The lookup gives
// the common case a clean answer; the unique index settles concurrent
// registrations of the same phone, so only one of them succeeds.
func (s *LeadService) Register(ctx context.Context, reg validate.LeadRegistration) (domain.Lead, error) {
	reg = reg.Normalize()
	_, err := s.Leads.ByPhone(ctx, reg.Phone)
	switch {
	case err == nil:
		return domain.Lead{}, ErrPhoneTaken
	case !errors.Is(err, sql.ErrNoRows):
		return domain.Lead{}, err
	}

	l, err := s.Leads.Create(ctx, reg.Name, reg.Phone)
	if errors.Is(err, repos.ErrDuplicate) {
		return domain.Lead{}, ErrPhoneTaken
	}
	return l, err
}

// Login is a lookup by phone; there is no secret involved.
func (s *LeadService) Login(ctx context.Context, in validate.LeadLogin) (domain.Lead, error) {
	return s.ByPhone(ctx, in.Phone)
}

func (s *LeadService) ByPhone(ctx context.Context, phone string) (domain.Lead, error) {
	l, err := s.Leads.ByPhone(ctx, phone)
	return l, notFound(err)
}

package services

import (
	"context"

	"essencia/internal/domain"
)

// InterestService keeps the per-lead list of viewed products.
type InterestService struct {
	Viewed ViewedStore
}

func NewInterestService(viewed ViewedStore) *InterestService {
	return &InterestService{Viewed: viewed}
}

// Record appends a view; viewing the same product again adds another row.
func (s *InterestService) Record(ctx context.Context, leadID, productID int64) (domain.ViewedProduct, error) {
	return s.Viewed.Add(ctx, leadID, productID)
}

func (s *InterestService) List(ctx context.Context, leadID int64) ([]domain.ViewedProduct, error) {
	return s.Viewed.ByLead(ctx, leadID)
}

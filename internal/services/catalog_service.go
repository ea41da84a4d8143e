package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"essencia/internal/domain"
	"essencia/internal/validate"
)

type CatalogService struct {
	Prods ProductStore
}

func NewCatalogService(prods ProductStore) *CatalogService {
	return &CatalogService{Prods: prods}
}

// notFound turns the store's missing-row signal into ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// List returns the whole catalog, or the products matching q when it is set.
func (s *CatalogService) List(ctx context.Context, q string) ([]domain.Product, error) {
	if q = strings.TrimSpace(q); q != "" {
		return s.Prods.Search(ctx, q)
	}
	return s.Prods.All(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.Prods.Get(ctx, id)
	return p, notFound(err)
}

func (s *CatalogService) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.Prods.ByCategory(ctx, category)
}

func (s *CatalogService) Create(ctx context.Context, in validate.ProductInput) (domain.Product, error) {
	return s.Prods.Create(ctx, in.Product())
}

func (s *CatalogService) Update(ctx context.Context, id int64, patch validate.ProductPatch) (domain.Product, error) {
	p, err := s.Prods.Update(ctx, id, patch)
	return p, notFound(err)
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	return notFound(s.Prods.Delete(ctx, id))
}

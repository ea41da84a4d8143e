package services

import (
	"context"
	"errors"

	"essencia/internal/domain"
	"essencia/internal/validate"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrPhoneTaken = errors.New("phone already registered")
)

// The stores below are satisfied by the repos package; tests swap in mocks.

type ProductStore interface {
	All(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (domain.Product, error)
	ByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Search(ctx context.Context, q string) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, id int64, patch validate.ProductPatch) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type LeadStore interface {
	All(ctx context.Context) ([]domain.Lead, error)
	ByPhone(ctx context.Context, phone string) (domain.Lead, error)
	Create(ctx context.Context, name, phone string) (domain.Lead, error)
}

type ViewedStore interface {
	Add(ctx context.Context, leadID, productID int64) (domain.ViewedProduct, error)
	ByLead(ctx context.Context, leadID int64) ([]domain.ViewedProduct, error)
}

type BlogStore interface {
	Page(ctx context.Context, page, limit int) ([]domain.BlogPost, int, error)
	Get(ctx context.Context, id int64) (domain.BlogPost, error)
	Create(ctx context.Context, p domain.BlogPost) (domain.BlogPost, error)
}

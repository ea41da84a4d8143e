package handlers

import (
	"context"

	"github.com/jmoiron/sqlx"

	"essencia/internal/repos"
	"essencia/internal/services"
)

type Deps struct {
	ProductHandler *ProductHandler
	LeadHandler    *LeadHandler
	ViewedHandler  *ViewedHandler
	BlogHandler    *BlogHandler

	// Ping reports whether the store is reachable.
	Ping func(ctx context.Context) error
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	leadRepo := repos.NewLeadRepo(db)
	viewedRepo := repos.NewViewedRepo(db)
	blogRepo := repos.NewBlogRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	leadSvc := services.NewLeadService(leadRepo)
	interestSvc := services.NewInterestService(viewedRepo)
	blogSvc := services.NewBlogService(blogRepo)

	return &Deps{
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		LeadHandler:    &LeadHandler{Leads: leadSvc},
		ViewedHandler:  &ViewedHandler{Interests: interestSvc},
		BlogHandler:    &BlogHandler{Blog: blogSvc},
		Ping:           db.PingContext,
	}
}

package repos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"essencia/internal/domain"
)

type ViewedRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewViewedRepo(db *sqlx.DB) *ViewedRepo { return &ViewedRepo{db: db, now: utcNow} }

// Add appends a view record. Repeated views of the same product are kept.
func (r *ViewedRepo) Add(ctx context.Context, leadID, productID int64) (domain.ViewedProduct, error) {
	var v domain.ViewedProduct
	err := r.db.GetContext(ctx, &v, r.db.Rebind(`
	  INSERT INTO viewed_products(lead_id, product_id, viewed_at)
	  VALUES (?, ?, ?)
	  RETURNING id, lead_id, product_id, viewed_at
	`), leadID, productID, r.now())
	return v, err
}

func (r *ViewedRepo) ByLead(ctx context.Context, leadID int64) ([]domain.ViewedProduct, error) {
	out := []domain.ViewedProduct{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
	  SELECT id, lead_id, product_id, viewed_at
	  FROM viewed_products
	  WHERE lead_id = ?
	  ORDER BY viewed_at, id
	`), leadID)
	return out, err
}

package repos

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"essencia/internal/domain"
)

type LeadRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewLeadRepo(db *sqlx.DB) *LeadRepo { return &LeadRepo{db: db, now: utcNow} }

func (r *LeadRepo) All(ctx context.Context) ([]domain.Lead, error) {
	out := []domain.Lead{}
	err := r.db.SelectContext(ctx, &out, `SELECT id, name, phone, created_at FROM leads ORDER BY id`)
	return out, err
}

// ByPhone is an exact match; sql.ErrNoRows when nobody registered the number.
func (r *LeadRepo) ByPhone(ctx context.Context, phone string) (domain.Lead, error) {
	var l domain.Lead
	err := r.db.GetContext(ctx, &l, r.db.Rebind(`SELECT id, name, phone, created_at FROM leads WHERE phone = ?`), phone)
	return l, err
}

// Create inserts a lead; a phone that is already taken yields ErrDuplicate.
func (r *LeadRepo) Create(ctx context.Context, name, phone string) (domain.Lead, error) {
	var l domain.Lead
	err := r.db.GetContext(ctx, &l, r.db.Rebind(`
	  INSERT INTO leads(name, phone, created_at)
	  VALUES (?, ?, ?)
	  RETURNING id, name, phone, created_at
	`), name, phone, r.now())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Lead{}, fmt.Errorf("lead phone %q: %w", phone, ErrDuplicate)
		}
		return domain.Lead{}, err
	}
	return l, nil
}

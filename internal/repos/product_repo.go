package repos

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"essencia/internal/domain"
	"essencia/internal/validate"
)

const productCols = `id, name, brand, price, image, category, notes, stock, is_promotion, promo_price`

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) All(ctx context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+productCols+` FROM products ORDER BY id`)
	return out, err
}

// Get returns sql.ErrNoRows when the id is unknown.
func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.GetContext(ctx, &p, r.db.Rebind(`SELECT `+productCols+` FROM products WHERE id = ?`), id)
	return p, err
}

// ByCategory matches the stored category exactly (case-sensitive).
func (r *ProductRepo) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
	  SELECT `+productCols+`
	  FROM products
	  WHERE category = ?
	  ORDER BY id
	`), category)
	return out, err
}

// Search does a case-insensitive substring match over name, brand and notes.
func (r *ProductRepo) Search(ctx context.Context, q string) ([]domain.Product, error) {
	like := "%" + strings.ToLower(q) + "%"
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
	  SELECT `+productCols+`
	  FROM products
	  WHERE LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(notes) LIKE ?
	  ORDER BY id
	`), like, like, like)
	return out, err
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	var out domain.Product
	err := r.db.GetContext(ctx, &out, r.db.Rebind(`
	  INSERT INTO products(name, brand, price, image, category, notes, stock, is_promotion, promo_price)
	  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	  RETURNING `+productCols),
		p.Name, p.Brand, p.Price, p.Image, string(p.Category), p.Notes, p.Stock, p.IsPromotion, p.PromoPrice)
	return out, err
}

// Update writes only the fields present in the patch. Returns sql.ErrNoRows
// when the id is unknown.
func (r *ProductRepo) Update(ctx context.Context, id int64, patch validate.ProductPatch) (domain.Product, error) {
	set := []string{}
	args := []any{}
	add := func(col string, v any) {
		set = append(set, col+" = ?")
		args = append(args, v)
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Brand != nil {
		add("brand", *patch.Brand)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if patch.Category != nil {
		add("category", string(*patch.Category))
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.Stock != nil {
		add("stock", *patch.Stock)
	}
	if patch.IsPromotion != nil {
		add("is_promotion", *patch.IsPromotion)
	}
	if patch.PromoPrice.Set {
		add("promo_price", patch.PromoPrice.Value)
	}
	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	var out domain.Product
	err := r.db.GetContext(ctx, &out, r.db.Rebind(`
	  UPDATE products SET `+strings.Join(set, ", ")+`
	  WHERE id = ?
	  RETURNING `+productCols), args...)
	return out, err
}

// Delete returns sql.ErrNoRows when nothing was removed.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM products WHERE id = ?`), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

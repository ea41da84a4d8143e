package domain

import "time"

type Category string

const (
	Masculine Category = "Masculine"
	Feminine  Category = "Feminine"
	Unisex    Category = "Unisex"
)

var Categories = []Category{Masculine, Feminine, Unisex}

type Product struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Brand       string    `db:"brand" json:"brand"`
	Price       Money     `db:"price" json:"price"`
	Image       string    `db:"image" json:"image"`
	Category    Category  `db:"category" json:"category"`
	Notes       string    `db:"notes" json:"notes"`
	Stock       int       `db:"stock" json:"stock"`
	IsPromotion bool      `db:"is_promotion" json:"isPromotion"`
	PromoPrice  NullMoney `db:"promo_price" json:"promoPrice"`
}

// OutOfStock reports whether the product can no longer be ordered.
func (p Product) OutOfStock() bool { return p.Stock == 0 }

// DisplayPrice is the promotional price when the product is on promotion and
// one is set, otherwise the regular price.
func (p Product) DisplayPrice() Money {
	if p.IsPromotion && p.PromoPrice.Valid {
		return p.PromoPrice.Money
	}
	return p.Price
}

type BlogPost struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Excerpt   string    `db:"excerpt" json:"excerpt"`
	Content   string    `db:"content" json:"content"`
	Image     string    `db:"image" json:"image"`
	ProductID *int64    `db:"product_id" json:"productId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// BlogPage is one page of posts plus the count across all pages.
type BlogPage struct {
	Posts []BlogPost `json:"posts"`
	Total int        `json:"total"`
}

// TotalPages is the number of pages of size limit needed to show every post.
func (b BlogPage) TotalPages(limit int) int {
	if limit <= 0 {
		return 0
	}
	return (b.Total + limit - 1) / limit
}

type Lead struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type ViewedProduct struct {
	ID        int64     `db:"id" json:"id"`
	LeadID    int64     `db:"lead_id" json:"leadId"`
	ProductID int64     `db:"product_id" json:"productId"`
	ViewedAt  time.Time `db:"viewed_at" json:"viewedAt"`
}

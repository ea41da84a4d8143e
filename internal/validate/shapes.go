package validate

import (
	"bytes"
	"encoding/json"
	"strings"

	"essencia/internal/domain"
)

// ProductInput is what the admin form may send when creating a product.
type ProductInput struct {
	Name        string           `json:"name" validate:"required,notblank"`
	Brand       string           `json:"brand" validate:"required,notblank"`
	Price       *domain.Money    `json:"price" validate:"required"`
	Image       string           `json:"image" validate:"required,notblank"`
	Category    domain.Category  `json:"category" validate:"required,category"`
	Notes       string           `json:"notes" validate:"required"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	IsPromotion *bool            `json:"isPromotion"`
	PromoPrice  domain.NullMoney `json:"promoPrice" validate:"-"`
}

// Product applies the column defaults (stock 0, no promotion).
func (in ProductInput) Product() domain.Product {
	p := domain.Product{
		Name:       in.Name,
		Brand:      in.Brand,
		Image:      in.Image,
		Category:   in.Category,
		Notes:      in.Notes,
		PromoPrice: in.PromoPrice,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.IsPromotion != nil {
		p.IsPromotion = *in.IsPromotion
	}
	return p
}

// OptionalMoney tells an absent key apart from an explicit null.
type OptionalMoney struct {
	Set   bool
	Value domain.NullMoney
}

func (o *OptionalMoney) UnmarshalJSON(b []byte) error {
	o.Set = true
	return o.Value.UnmarshalJSON(b)
}

// ProductPatch is a partial ProductInput; nil fields are left untouched.
type ProductPatch struct {
	Name        *string          `json:"name" validate:"omitempty,notblank"`
	Brand       *string          `json:"brand" validate:"omitempty,notblank"`
	Price       *domain.Money    `json:"price"`
	Image       *string          `json:"image" validate:"omitempty,notblank"`
	Category    *domain.Category `json:"category" validate:"omitempty,category"`
	Notes       *string          `json:"notes"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	IsPromotion *bool            `json:"isPromotion"`
	PromoPrice  OptionalMoney    `json:"promoPrice" validate:"-"`

	nulls []string
}

// Keys a patch may omit but never set to null. Only promoPrice is nullable.
var patchRequiredKeys = []string{"name", "brand", "price", "image", "category", "notes", "stock", "isPromotion"}

func (p *ProductPatch) UnmarshalJSON(b []byte) error {
	type plain ProductPatch
	if err := json.Unmarshal(b, (*plain)(p)); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.nulls = nil
	for _, key := range patchRequiredKeys {
		for k, v := range raw {
			if strings.EqualFold(k, key) && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
				p.nulls = append(p.nulls, key)
				break
			}
		}
	}
	return nil
}

func (p ProductPatch) check() Errors {
	var out Errors
	for _, k := range p.nulls {
		out = append(out, FieldError{Field: k, Rule: "notnull", Message: "must not be null"})
	}
	return out
}

// Empty reports a patch that would not change anything.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Brand == nil && p.Price == nil && p.Image == nil &&
		p.Category == nil && p.Notes == nil && p.Stock == nil && p.IsPromotion == nil &&
		!p.PromoPrice.Set
}

type BlogPostInput struct {
	Title     string `json:"title" validate:"required,notblank"`
	Excerpt   string `json:"excerpt" validate:"required,notblank"`
	Content   string `json:"content" validate:"required,notblank"`
	Image     string `json:"image" validate:"required,notblank"`
	ProductID *int64 `json:"productId" validate:"omitempty,gt=0"`
}

func (in BlogPostInput) BlogPost() domain.BlogPost {
	return domain.BlogPost{
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Image:     in.Image,
		ProductID: in.ProductID,
	}
}

type LeadRegistration struct {
	Name  string `json:"name" validate:"required,notblank"`
	Phone string `json:"phone" validate:"required,notblank"`
}

// Normalize trims surrounding whitespace so the phone is stored as typed.
func (r LeadRegistration) Normalize() LeadRegistration {
	return LeadRegistration{Name: strings.TrimSpace(r.Name), Phone: strings.TrimSpace(r.Phone)}
}

type LeadLogin struct {
	Phone string `json:"phone" validate:"required,notblank"`
}

type ViewedProductInput struct {
	LeadID    int64 `json:"leadId" validate:"required,gt=0"`
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

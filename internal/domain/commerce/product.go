package commerce

import (
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product sold by a seller
type Product struct {
	ID          string          `validate:"required,uuid4"`
	SellerID    string          `validate:"required,uuid4"`
	Name        string          `validate:"required,min=2,max=200"`
	Description string          `validate:"max=4000"`
	SKU         string          `validate:"required,min=2,max=64"`
	Category    string          `validate:"required,max=100"`
	Price       decimal.Decimal `validate:"-"`
	Stock       int             `validate:"gte=0"`
	ImageKey    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductInput creates or replaces the editable fields of a product
type ProductInput struct {
	SellerID    string          `json:"sellerId" validate:"required,uuid4"`
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Description string          `json:"description" validate:"max=4000"`
	SKU         string          `json:"sku" validate:"required,min=2,max=64"`
	Category    string          `json:"category" validate:"required,max=100"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Active      bool            `json:"active"`
}

// NewProduct creates a product from input
func NewProduct(input *ProductInput) *Product {
	now := time.Now().UTC()
	p := &Product{ID: uuid.NewString(), CreatedAt: now}
	p.Apply(input, now)
	return p
}

// Apply copies the editable fields of input onto p
func (p *Product) Apply(input *ProductInput, now time.Time) {
	p.SellerID = input.SellerID
	p.Name = strings.TrimSpace(input.Name)
	p.Description = strings.TrimSpace(input.Description)
	p.SKU = strings.ToUpper(strings.TrimSpace(input.SKU))
	p.Category = strings.TrimSpace(input.Category)
	p.Price = input.Price.Round(2)
	p.Stock = input.Stock
	p.Active = input.Active
	p.UpdatedAt = now
}

// Validate for validating Product struct
func (p *Product) Validate() error {
	if err := validators.Struct(p); err != nil {
		return err
	}
	if p.Price.IsNegative() {
		return apperror.FieldValidation("price", "price must not be negative")
	}
	return nil
}

// StockInput sets the stock level of a product
type StockInput struct {
	Stock int `json:"stock" validate:"gte=0"`
}

// ActiveInput toggles whether a product is listed in the catalog
type ActiveInput struct {
	Active bool `json:"active"`
}

// ProductQuery filters the product list
type ProductQuery struct {
	SellerID string
	Category string
	Search   string
	Active   *bool
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	listing.Page
}

// Validate checks the query parameters
func (q *ProductQuery) Validate() error {
	return q.Page.Validate("created_at", "name", "price", "stock")
}

func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return apperror.FieldValidation("commissionRate", "commissionRate must be between 0 and 100")
	}
	return nil
}

// Package territories groups pincodes into territory categories used to route dealers.
package territories

import (
	"context"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"

	"github.com/google/uuid"
)

// Category is a named set of pincodes
type Category struct {
	ID          string   `validate:"required,uuid4"`
	Name        string   `validate:"required,min=2,max=120"`
	Description string   `validate:"max=1000"`
	Pincodes    []string `validate:"dive,pincode"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Input creates or replaces a category
type Input struct {
	Name        string   `json:"name" validate:"required,min=2,max=120"`
	Description string   `json:"description" validate:"max=1000"`
	Pincodes    []string `json:"pincodes" validate:"dive,pincode"`
}

// NewCategory creates a category from input
func NewCategory(input *Input) *Category {
	now := time.Now().UTC()
	c := &Category{ID: uuid.NewString(), CreatedAt: now}
	c.Apply(input, now)
	return c
}

// Apply copies input onto c, de-duplicating pincodes
func (c *Category) Apply(input *Input, now time.Time) {
	c.Name = strings.TrimSpace(input.Name)
	c.Description = strings.TrimSpace(input.Description)
	seen := make(map[string]struct{}, len(input.Pincodes))
	c.Pincodes = c.Pincodes[:0]
	for _, p := range input.Pincodes {
		p = strings.TrimSpace(p)
		if _, ok := seen[p]; ok || p == "" {
			continue
		}
		seen[p] = struct{}{}
		c.Pincodes = append(c.Pincodes, p)
	}
	c.UpdatedAt = now
}

// Validate for validating Category struct
func (c *Category) Validate() error {
	return validators.Struct(c)
}

// Covers reports whether pincode belongs to the category
func (c *Category) Covers(pincode string) bool {
	for _, p := range c.Pincodes {
		if p == pincode {
			return true
		}
	}
	return false
}

// Query filters the category list
type Query struct {
	Search string
	listing.Page
}

// Validate checks the query parameters
func (q *Query) Validate() error {
	return q.Page.Validate("created_at", "name")
}

// CategoryRepository persists territory categories
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, categoryID string) (*Category, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	List(ctx context.Context, query *Query) ([]*Category, int64, error)
	FindByPincode(ctx context.Context, pincode string) (*Category, error)
	Update(ctx context.Context, category *Category) error
	DeleteByID(ctx context.Context, categoryID string) error
}

// TerritoryService manages territory categories
type TerritoryService interface {
	Create(ctx context.Context, input *Input) (*Category, error)
	Update(ctx context.Context, categoryID string, input *Input) (*Category, error)
	GetByID(ctx context.Context, categoryID string) (*Category, error)
	List(ctx context.Context, query *Query) ([]*Category, int64, error)
	DeleteByID(ctx context.Context, categoryID string) error
	// Resolve returns the category whose pincode list contains pincode.
	Resolve(ctx context.Context, pincode string) (*Category, error)
}

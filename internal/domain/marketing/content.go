// Package marketing manages banners, blog posts, promotions and testimonials shown to visitors.
package marketing

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"

	"github.com/google/uuid"
)

// Kind of marketing content
type Kind string

// Content kinds
const (
	KindBanner      Kind = "BANNER"
	KindBlog        Kind = "BLOG"
	KindPromotion   Kind = "PROMOTION"
	KindTestimonial Kind = "TESTIMONIAL"
)

// Content is one marketing item
type Content struct {
	ID        string `validate:"required,uuid4"`
	Kind      Kind   `validate:"required,oneof=BANNER BLOG PROMOTION TESTIMONIAL"`
	Title     string `validate:"required,min=2,max=200"`
	Body      string `validate:"max=20000"`
	ImageKey  string
	LinkURL   string `validate:"omitempty,url"`
	Position  int    `validate:"gte=0"`
	Published bool
	StartsAt  *time.Time
	EndsAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Input creates or replaces the editable fields of a content item
type Input struct {
	Kind      Kind       `json:"kind" validate:"required,oneof=BANNER BLOG PROMOTION TESTIMONIAL"`
	Title     string     `json:"title" validate:"required,min=2,max=200"`
	Body      string     `json:"body" validate:"max=20000"`
	LinkURL   string     `json:"linkUrl" validate:"omitempty,url"`
	Position  int        `json:"position" validate:"gte=0"`
	Published bool       `json:"published"`
	StartsAt  *time.Time `json:"startsAt"`
	EndsAt    *time.Time `json:"endsAt"`
}

// NewContent creates a content item from input
func NewContent(input *Input) *Content {
	now := time.Now().UTC()
	c := &Content{ID: uuid.NewString(), CreatedAt: now}
	c.Apply(input, now)
	return c
}

// Apply copies the editable fields of input onto c
func (c *Content) Apply(input *Input, now time.Time) {
	c.Kind = input.Kind
	c.Title = strings.TrimSpace(input.Title)
	c.Body = input.Body
	c.LinkURL = strings.TrimSpace(input.LinkURL)
	c.Position = input.Position
	c.Published = input.Published
	c.StartsAt = utcPtr(input.StartsAt)
	c.EndsAt = utcPtr(input.EndsAt)
	c.UpdatedAt = now
}

// Validate for validating Content struct
func (c *Content) Validate() error {
	if err := validators.Struct(c); err != nil {
		return err
	}
	if c.StartsAt != nil && c.EndsAt != nil && !c.EndsAt.After(*c.StartsAt) {
		return apperror.FieldValidation("endsAt", "endsAt must be after startsAt")
	}
	return nil
}

// ActiveAt reports whether c is published and inside its [StartsAt, EndsAt) window at now
func (c *Content) ActiveAt(now time.Time) bool {
	if !c.Published {
		return false
	}
	if c.StartsAt != nil && now.Before(*c.StartsAt) {
		return false
	}
	if c.EndsAt != nil && !now.Before(*c.EndsAt) {
		return false
	}
	return true
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// PublishInput publishes or unpublishes content
type PublishInput struct {
	Published bool `json:"published"`
}

// Query filters the content list
type Query struct {
	Kind      Kind
	Published *bool
	listing.Page
}

// Validate checks the query parameters
func (q *Query) Validate() error {
	return q.Page.Validate("created_at", "position", "title")
}

// ContentRepository persists marketing content
type ContentRepository interface {
	Create(ctx context.Context, content *Content) error
	GetByID(ctx context.Context, contentID string) (*Content, error)
	List(ctx context.Context, query *Query) ([]*Content, int64, error)
	// ListActive returns published items whose window contains now, ordered by position then newest.
	ListActive(ctx context.Context, kind Kind, now time.Time) ([]*Content, error)
	Update(ctx context.Context, content *Content) error
	DeleteByID(ctx context.Context, contentID string) error
}

// ContentService manages marketing content
type ContentService interface {
	Create(ctx context.Context, input *Input) (*Content, error)
	Update(ctx context.Context, contentID string, input *Input) (*Content, error)
	GetByID(ctx context.Context, contentID string) (*Content, error)
	List(ctx context.Context, query *Query) ([]*Content, int64, error)
	Active(ctx context.Context, kind Kind) ([]*Content, error)
	SetPublished(ctx context.Context, contentID string, input *PublishInput) (*Content, error)
	DeleteByID(ctx context.Context, contentID string) error
	UploadImage(ctx context.Context, contentID string, file *multipart.FileHeader) (*Content, error)
	Image(ctx context.Context, contentID string) ([]byte, string, error)
}

package commerce

import (
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellerStatus is the approval state of a seller
type SellerStatus string

// Seller statuses
const (
	SellerPending   SellerStatus = "PENDING"
	SellerApproved  SellerStatus = "APPROVED"
	SellerRejected  SellerStatus = "REJECTED"
	SellerSuspended SellerStatus = "SUSPENDED"
)

var sellerTransitions = map[SellerStatus][]SellerStatus{
	SellerPending:   {SellerApproved, SellerRejected},
	SellerApproved:  {SellerSuspended},
	SellerSuspended: {SellerApproved},
	SellerRejected:  {SellerApproved},
}

// CanTransitionTo reports whether a seller may move from s to next
func (s SellerStatus) CanTransitionTo(next SellerStatus) bool {
	for _, allowed := range sellerTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Seller offers products in the shop
type Seller struct {
	ID             string          `validate:"required,uuid4"`
	Name           string          `validate:"required,min=2,max=200"`
	Email          string          `validate:"required,email"`
	Phone          string          `validate:"required,e164"`
	GSTNumber      string          `validate:"omitempty,gstin"`
	Status         SellerStatus    `validate:"required,oneof=PENDING APPROVED REJECTED SUSPENDED"`
	CommissionRate decimal.Decimal `validate:"-"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SellerInput creates a seller
type SellerInput struct {
	Name           string          `json:"name" validate:"required,min=2,max=200"`
	Email          string          `json:"email" validate:"required,email"`
	Phone          string          `json:"phone" validate:"required,e164"`
	GSTNumber      string          `json:"gstNumber" validate:"omitempty,gstin"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
}

// NewSeller creates a pending seller
func NewSeller(input *SellerInput) *Seller {
	now := time.Now().UTC()
	return &Seller{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(input.Name),
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:          input.Phone,
		GSTNumber:      strings.ToUpper(strings.TrimSpace(input.GSTNumber)),
		Status:         SellerPending,
		CommissionRate: input.CommissionRate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Validate for validating Seller struct
func (s *Seller) Validate() error {
	if err := validators.Struct(s); err != nil {
		return err
	}
	return validateRate(s.CommissionRate)
}

// SellerStatusInput moves a seller to another status
type SellerStatusInput struct {
	Status SellerStatus `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED SUSPENDED"`
}

// SellerQuery filters the seller list
type SellerQuery struct {
	Status SellerStatus
	Search string
	listing.Page
}

// Validate checks the query parameters
func (q *SellerQuery) Validate() error {
	return q.Page.Validate("created_at", "name")
}

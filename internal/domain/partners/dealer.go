package partners

import (
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"

	"github.com/google/uuid"
)

// Dealer profile
type Dealer struct {
	ID                  string        `validate:"required,uuid4"`
	UserID              string        `validate:"required,uuid4"`
	BusinessName        string        `validate:"required,min=2,max=200"`
	OwnerName           string        `validate:"required,min=2,max=120"`
	GSTNumber           string        `validate:"omitempty,gstin"`
	Address             string        `validate:"required,max=500"`
	City                string        `validate:"required,max=100"`
	State               string        `validate:"required,max=100"`
	Pincode             string        `validate:"required,pincode"`
	TerritoryCategoryID *string       `validate:"omitempty,uuid4"`
	AccountStatus       AccountStatus `validate:"required,oneof=PENDING APPROVED REJECTED SUSPENDED"`
	KYCStatus           KYCStatus     `validate:"required,oneof=NOT_SUBMITTED SUBMITTED VERIFIED REJECTED"`
	TrustScore          int           `validate:"gte=0,lte=100"`
	StatusReason        string        `validate:"max=500"`
	KYCReason           string        `validate:"max=500"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewDealer creates a pending dealer profile for userID
func NewDealer(userID string) *Dealer {
	now := time.Now().UTC()
	return &Dealer{
		ID:            uuid.NewString(),
		UserID:        userID,
		AccountStatus: AccountPending,
		KYCStatus:     KYCNotSubmitted,
		TrustScore:    DefaultTrustScore,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate for validating Dealer struct
func (d *Dealer) Validate() error {
	d.GSTNumber = strings.ToUpper(strings.TrimSpace(d.GSTNumber))
	return validators.Struct(d)
}

// DealerQuery filters the dealer list
type DealerQuery struct {
	AccountStatus AccountStatus
	KYCStatus     KYCStatus
	Search        string
	City          string
	TerritoryID   string
	listing.Page
}

// DealerSortColumns lists the columns a dealer list may be sorted by
var DealerSortColumns = []string{"created_at", "business_name", "trust_score", "city"}

// Validate checks the query parameters
func (q *DealerQuery) Validate() error {
	return q.Page.Validate(DealerSortColumns...)
}

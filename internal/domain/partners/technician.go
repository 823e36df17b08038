package partners

import (
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"

	"github.com/google/uuid"
)

// Technician profile. A technician may be attached to a dealer.
type Technician struct {
	ID              string        `validate:"required,uuid4"`
	UserID          string        `validate:"required,uuid4"`
	DealerID        *string       `validate:"omitempty,uuid4"`
	Skills          []string      `validate:"required,min=1,dive,min=2,max=60"`
	ExperienceYears int           `validate:"gte=0,lte=60"`
	City            string        `validate:"required,max=100"`
	Pincode         string        `validate:"required,pincode"`
	AccountStatus   AccountStatus `validate:"required,oneof=PENDING APPROVED REJECTED SUSPENDED"`
	KYCStatus       KYCStatus     `validate:"required,oneof=NOT_SUBMITTED SUBMITTED VERIFIED REJECTED"`
	TrustScore      int           `validate:"gte=0,lte=100"`
	StatusReason    string        `validate:"max=500"`
	KYCReason       string        `validate:"max=500"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTechnician creates a pending technician profile for userID
func NewTechnician(userID string) *Technician {
	now := time.Now().UTC()
	return &Technician{
		ID:            uuid.NewString(),
		UserID:        userID,
		AccountStatus: AccountPending,
		KYCStatus:     KYCNotSubmitted,
		TrustScore:    DefaultTrustScore,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate for validating Technician struct
func (t *Technician) Validate() error {
	t.Skills = NormalizeSkills(t.Skills)
	return validators.Struct(t)
}

// NormalizeSkills trims, lowercases and de-duplicates skills, keeping their order
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// TechnicianQuery filters the technician list
type TechnicianQuery struct {
	AccountStatus AccountStatus
	KYCStatus     KYCStatus
	DealerID      string
	City          string
	Skill         string
	listing.Page
}

// TechnicianSortColumns lists the columns a technician list may be sorted by
var TechnicianSortColumns = []string{"created_at", "experience_years", "trust_score", "city"}

// Validate checks the query parameters
func (q *TechnicianQuery) Validate() error {
	return q.Page.Validate(TechnicianSortColumns...)
}

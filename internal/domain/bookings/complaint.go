package bookings

import (
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"

	"github.com/google/uuid"
)

// ComplaintStatus of a complaint
type ComplaintStatus string

// Complaint statuses
const (
	ComplaintOpen     ComplaintStatus = "OPEN"
	ComplaintInReview ComplaintStatus = "IN_REVIEW"
	ComplaintResolved ComplaintStatus = "RESOLVED"
	ComplaintRejected ComplaintStatus = "REJECTED"
	ComplaintClosed   ComplaintStatus = "CLOSED"
)

var complaintTransitions = map[ComplaintStatus][]ComplaintStatus{
	ComplaintOpen:     {ComplaintInReview, ComplaintResolved, ComplaintRejected},
	ComplaintInReview: {ComplaintResolved, ComplaintRejected},
	ComplaintResolved: {ComplaintClosed},
	ComplaintRejected: {ComplaintClosed},
}

// CanTransitionTo reports whether a complaint may move from s to next
func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	for _, allowed := range complaintTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Complaint raised by a customer against a booking
type Complaint struct {
	ID          string          `validate:"required,uuid4"`
	BookingID   string          `validate:"required,uuid4"`
	CustomerID  string          `validate:"required,uuid4"`
	Subject     string          `validate:"required,min=3,max=200"`
	Description string          `validate:"required,min=10,max=4000"`
	Status      ComplaintStatus `validate:"required,oneof=OPEN IN_REVIEW RESOLVED REJECTED CLOSED"`
	Resolution  string          `validate:"max=4000"`
	Upheld      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate for validating Complaint struct
func (c *Complaint) Validate() error {
	return validators.Struct(c)
}

// RaiseInput is the customer request to raise a complaint
type RaiseInput struct {
	Subject     string `json:"subject" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required,min=10,max=4000"`
}

// NewComplaint creates an open complaint
func NewComplaint(b *Booking, input *RaiseInput) *Complaint {
	now := time.Now().UTC()
	return &Complaint{
		ID:          uuid.NewString(),
		BookingID:   b.ID,
		CustomerID:  b.CustomerID,
		Subject:     strings.TrimSpace(input.Subject),
		Description: strings.TrimSpace(input.Description),
		Status:      ComplaintOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ComplaintUpdate is an admin request to move a complaint
type ComplaintUpdate struct {
	Status     ComplaintStatus `json:"status" validate:"required,oneof=IN_REVIEW RESOLVED REJECTED CLOSED"`
	Resolution string          `json:"resolution" validate:"max=4000"`
	Upheld     bool            `json:"upheld"`
}

// ApplyUpdate checks and applies an admin update to c
func (c *Complaint) ApplyUpdate(u *ComplaintUpdate, now time.Time) error {
	if !c.Status.CanTransitionTo(u.Status) {
		return apperror.InvalidTransition("complaint", c.Status, u.Status)
	}

	resolution := strings.TrimSpace(u.Resolution)
	if (u.Status == ComplaintResolved || u.Status == ComplaintRejected) && resolution == "" {
		return apperror.FieldValidation("resolution", "a resolution is required to %s a complaint", strings.ToLower(string(u.Status)))
	}

	c.Status = u.Status
	if resolution != "" {
		c.Resolution = resolution
	}
	if u.Status == ComplaintResolved {
		c.Upheld = u.Upheld
	}
	c.UpdatedAt = now
	return nil
}

// ComplaintQuery filters the complaint list
type ComplaintQuery struct {
	Status     ComplaintStatus
	CustomerID string
	BookingID  string
	listing.Page
}

// ComplaintSortColumns lists the columns a complaint list may be sorted by
var ComplaintSortColumns = []string{"created_at", "updated_at", "status"}

// Validate checks the query parameters
func (q *ComplaintQuery) Validate() error {
	return q.Page.Validate(ComplaintSortColumns...)
}

package bookings

import (
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"

	"github.com/google/uuid"
)

// Booking is a customer service request handled by a dealer and optionally a technician
type Booking struct {
	ID           string  `validate:"required,uuid4"`
	CustomerID   string  `validate:"required,uuid4"`
	DealerID     string  `validate:"required,uuid4"`
	TechnicianID *string `validate:"omitempty,uuid4"`
	ServiceType  string  `validate:"required,min=2,max=100"`
	Description  string  `validate:"max=2000"`
	Address      string  `validate:"required,max=500"`
	Pincode      string  `validate:"required,pincode"`
	ScheduledAt  time.Time
	Status       Status `validate:"required"`
	StatusReason string `validate:"max=500"`
	Version      int    `validate:"gte=1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewBooking creates a pending booking for customerID at dealerID
func NewBooking(customerID, dealerID string, input *CreateInput) *Booking {
	now := time.Now().UTC()
	return &Booking{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		DealerID:    dealerID,
		ServiceType: strings.TrimSpace(input.ServiceType),
		Description: strings.TrimSpace(input.Description),
		Address:     strings.TrimSpace(input.Address),
		Pincode:     input.Pincode,
		ScheduledAt: input.ScheduledAt.UTC(),
		Status:      StatusPending,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate for validating Booking struct
func (b *Booking) Validate() error {
	return validators.Struct(b)
}

// AssignedTo reports whether technicianID is assigned to the booking
func (b *Booking) AssignedTo(technicianID string) bool {
	return b.TechnicianID != nil && *b.TechnicianID == technicianID
}

// Event records one status change of a booking. Events are append-only.
type Event struct {
	ID         string
	BookingID  string
	FromStatus Status
	ToStatus   Status
	ActorID    string
	ActorRole  users.Role
	Reason     string
	CreatedAt  time.Time
}

// NewEvent creates an event for a status change performed by actor
func NewEvent(bookingID string, from, to Status, actor *users.Principal, reason string) *Event {
	return &Event{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		FromStatus: from,
		ToStatus:   to,
		ActorID:    actor.UserID,
		ActorRole:  actor.Role,
		Reason:     reason,
		CreatedAt:  time.Now().UTC(),
	}
}

// CreateInput is the customer request to book a service
type CreateInput struct {
	DealerID    string    `json:"dealerId" validate:"required,uuid4"`
	ServiceType string    `json:"serviceType" validate:"required,min=2,max=100"`
	Description string    `json:"description" validate:"max=2000"`
	Address     string    `json:"address" validate:"required,max=500"`
	Pincode     string    `json:"pincode" validate:"required,pincode"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
}

// StatusInput is a request to move a booking to another status.
// Version is the version the caller last saw. Zero skips the client side check.
type StatusInput struct {
	Status      Status     `json:"status" validate:"required"`
	Reason      string     `json:"reason" validate:"max=500"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Version     int        `json:"version" validate:"gte=0"`
}

// AssignInput assigns a technician to a booking
type AssignInput struct {
	TechnicianID string `json:"technicianId" validate:"required,uuid4"`
	Version      int    `json:"version" validate:"gte=0"`
}

// Query filters the booking list
type Query struct {
	Status       Status
	CustomerID   string
	DealerID     string
	TechnicianID string
	From         time.Time
	To           time.Time
	listing.Page
}

// SortColumns lists the columns a booking list may be sorted by
var SortColumns = []string{"created_at", "scheduled_at", "status", "updated_at"}

// Validate checks the query parameters
func (q *Query) Validate() error {
	if q.Status != "" && !q.Status.Valid() {
		return validationStatusError(q.Status)
	}
	return q.Page.Validate(SortColumns...)
}

// CountFilter scopes booking counters to a dealer or technician. Empty fields are ignored.
type CountFilter struct {
	DealerID     string
	TechnicianID string
}

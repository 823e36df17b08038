package bookings

import (
	"context"

	"github.com/MGTheTrain/servicehub/internal/domain/users"
)

// BookingRepository persists bookings and their events
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, bookingID string) (*Booking, error)
	List(ctx context.Context, query *Query) ([]*Booking, int64, error)
	// Update writes booking only if the stored version still equals expectedVersion.
	Update(ctx context.Context, booking *Booking, expectedVersion int) error
	AppendEvent(ctx context.Context, event *Event) error
	ListEvents(ctx context.Context, bookingID string) ([]*Event, error)
	CountByStatus(ctx context.Context, filter CountFilter) (map[Status]int64, error)
}

// ComplaintRepository persists complaints
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *Complaint) error
	GetByID(ctx context.Context, complaintID string) (*Complaint, error)
	List(ctx context.Context, query *ComplaintQuery) ([]*Complaint, int64, error)
	Update(ctx context.Context, complaint *Complaint) error
	// HasActive reports whether the booking has a complaint that is not CLOSED.
	HasActive(ctx context.Context, bookingID string) (bool, error)
	// CountUpheld counts resolved, upheld complaints against bookings matching filter.
	CountUpheld(ctx context.Context, filter CountFilter) (int64, error)
	CountByStatus(ctx context.Context, filter CountFilter) (map[ComplaintStatus]int64, error)
}

// JobSheetRenderer renders a booking as a printable job sheet
type JobSheetRenderer interface {
	JobSheet(booking *Booking, events []*Event) ([]byte, error)
}

// BookingService handles the booking lifecycle
type BookingService interface {
	Create(ctx context.Context, actor *users.Principal, input *CreateInput) (*Booking, error)
	GetByID(ctx context.Context, actor *users.Principal, bookingID string) (*Booking, error)
	// List is scoped to the caller: customers see their own bookings, dealers their
	// dealership's, technicians the ones assigned to them and admins all.
	List(ctx context.Context, actor *users.Principal, query *Query) ([]*Booking, int64, error)
	UpdateStatus(ctx context.Context, actor *users.Principal, bookingID string, input *StatusInput) (*Booking, error)
	AssignTechnician(ctx context.Context, actor *users.Principal, bookingID string, input *AssignInput) (*Booking, error)
	History(ctx context.Context, actor *users.Principal, bookingID string) ([]*Event, error)
	JobSheet(ctx context.Context, actor *users.Principal, bookingID string) ([]byte, error)
}

// ComplaintService handles complaints raised against bookings
type ComplaintService interface {
	Raise(ctx context.Context, actor *users.Principal, bookingID string, input *RaiseInput) (*Complaint, error)
	Update(ctx context.Context, actor *users.Principal, complaintID string, update *ComplaintUpdate) (*Complaint, error)
	List(ctx context.Context, actor *users.Principal, query *ComplaintQuery) ([]*Complaint, int64, error)
}

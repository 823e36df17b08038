package models

import (
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
)

// BookingModel is the GORM database model for bookings
type BookingModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	CustomerID   string    `gorm:"not null;index;type:varchar(36)"`
	DealerID     string    `gorm:"not null;index;type:varchar(36)"`
	TechnicianID *string   `gorm:"index;type:varchar(36)"`
	ServiceType  string    `gorm:"not null;type:varchar(100)"`
	Description  string    `gorm:"type:text"`
	Address      string    `gorm:"not null;type:varchar(500)"`
	Pincode      string    `gorm:"not null;type:varchar(6)"`
	ScheduledAt  time.Time `gorm:"not null;index"`
	Status       string    `gorm:"not null;index;type:varchar(20)"`
	StatusReason string    `gorm:"type:varchar(500)"`
	Version      int       `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (BookingModel) TableName() string {
	return "bookings"
}

// ToDomain converts GORM model to domain entity
func (m *BookingModel) ToDomain() *bookings.Booking {
	return &bookings.Booking{
		ID:           m.ID,
		CustomerID:   m.CustomerID,
		DealerID:     m.DealerID,
		TechnicianID: m.TechnicianID,
		ServiceType:  m.ServiceType,
		Description:  m.Description,
		Address:      m.Address,
		Pincode:      m.Pincode,
		ScheduledAt:  m.ScheduledAt,
		Status:       bookings.Status(m.Status),
		StatusReason: m.StatusReason,
		Version:      m.Version,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BookingModel) FromDomain(b *bookings.Booking) {
	m.ID = b.ID
	m.CustomerID = b.CustomerID
	m.DealerID = b.DealerID
	m.TechnicianID = b.TechnicianID
	m.ServiceType = b.ServiceType
	m.Description = b.Description
	m.Address = b.Address
	m.Pincode = b.Pincode
	m.ScheduledAt = b.ScheduledAt
	m.Status = string(b.Status)
	m.StatusReason = b.StatusReason
	m.Version = b.Version
	m.CreatedAt = b.CreatedAt
	m.UpdatedAt = b.UpdatedAt
}

// BookingEventModel is the GORM database model for booking status events
type BookingEventModel struct {
	ID         string `gorm:"primaryKey;type:varchar(36)"`
	BookingID  string `gorm:"not null;index;type:varchar(36)"`
	FromStatus string `gorm:"type:varchar(20)"`
	ToStatus   string `gorm:"not null;type:varchar(20)"`
	ActorID    string `gorm:"not null;type:varchar(36)"`
	ActorRole  string `gorm:"not null;type:varchar(20)"`
	Reason     string `gorm:"type:varchar(500)"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (BookingEventModel) TableName() string {
	return "booking_events"
}

// ToDomain converts GORM model to domain entity
func (m *BookingEventModel) ToDomain() *bookings.Event {
	return &bookings.Event{
		ID:         m.ID,
		BookingID:  m.BookingID,
		FromStatus: bookings.Status(m.FromStatus),
		ToStatus:   bookings.Status(m.ToStatus),
		ActorID:    m.ActorID,
		ActorRole:  users.Role(m.ActorRole),
		Reason:     m.Reason,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BookingEventModel) FromDomain(e *bookings.Event) {
	m.ID = e.ID
	m.BookingID = e.BookingID
	m.FromStatus = string(e.FromStatus)
	m.ToStatus = string(e.ToStatus)
	m.ActorID = e.ActorID
	m.ActorRole = string(e.ActorRole)
	m.Reason = e.Reason
	m.CreatedAt = e.CreatedAt
}

// ComplaintModel is the GORM database model for complaints
type ComplaintModel struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	BookingID   string `gorm:"not null;index;type:varchar(36)"`
	CustomerID  string `gorm:"not null;index;type:varchar(36)"`
	Subject     string `gorm:"not null;type:varchar(200)"`
	Description string `gorm:"not null;type:text"`
	Status      string `gorm:"not null;index;type:varchar(20)"`
	Resolution  string `gorm:"type:text"`
	Upheld      bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ComplaintModel) TableName() string {
	return "complaints"
}

// ToDomain converts GORM model to domain entity
func (m *ComplaintModel) ToDomain() *bookings.Complaint {
	return &bookings.Complaint{
		ID:          m.ID,
		BookingID:   m.BookingID,
		CustomerID:  m.CustomerID,
		Subject:     m.Subject,
		Description: m.Description,
		Status:      bookings.ComplaintStatus(m.Status),
		Resolution:  m.Resolution,
		Upheld:      m.Upheld,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ComplaintModel) FromDomain(c *bookings.Complaint) {
	m.ID = c.ID
	m.BookingID = c.BookingID
	m.CustomerID = c.CustomerID
	m.Subject = c.Subject
	m.Description = c.Description
	m.Status = string(c.Status)
	m.Resolution = c.Resolution
	m.Upheld = c.Upheld
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

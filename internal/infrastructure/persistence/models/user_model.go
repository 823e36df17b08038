package models

import (
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/users"
)

// UserModel is the GORM database model for users
type UserModel struct {
	ID            string  `gorm:"primaryKey;type:varchar(36)"`
	Name          string  `gorm:"not null;type:varchar(120)"`
	Email         *string `gorm:"uniqueIndex;type:varchar(255)"`
	Phone         string  `gorm:"not null;uniqueIndex;type:varchar(20)"`
	PasswordHash  string  `gorm:"not null;type:varchar(255)"`
	Role          string  `gorm:"not null;index;type:varchar(20)"`
	PhoneVerified bool    `gorm:"not null;default:false"`
	EmailVerified bool    `gorm:"not null;default:false"`
	Active        bool    `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		PasswordHash:  m.PasswordHash,
		Role:          users.Role(m.Role),
		PhoneVerified: m.PhoneVerified,
		EmailVerified: m.EmailVerified,
		Active:        m.Active,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Name = u.Name
	m.Email = u.Email
	m.Phone = u.Phone
	m.PasswordHash = u.PasswordHash
	m.Role = string(u.Role)
	m.PhoneVerified = u.PhoneVerified
	m.EmailVerified = u.EmailVerified
	m.Active = u.Active
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}

// SessionModel is the GORM database model for bearer token sessions
type SessionModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"not null;index;type:varchar(36)"`
	TokenHash string    `gorm:"not null;uniqueIndex;type:varchar(64)"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "auth_sessions"
}

// ToDomain converts GORM model to domain entity
func (m *SessionModel) ToDomain() *users.Session {
	return &users.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SessionModel) FromDomain(s *users.Session) {
	m.ID = s.ID
	m.UserID = s.UserID
	m.TokenHash = s.TokenHash
	m.ExpiresAt = s.ExpiresAt
	m.CreatedAt = s.CreatedAt
}

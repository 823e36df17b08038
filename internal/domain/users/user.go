package users

import (
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/pkg/validators"

	"github.com/google/uuid"
)

// Role of a user account
type Role string

// Roles
const (
	RoleCustomer   Role = "CUSTOMER"
	RoleDealer     Role = "DEALER"
	RoleTechnician Role = "TECHNICIAN"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// IsAdmin reports whether the role may use the admin panels
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User entity
type User struct {
	ID            string  `validate:"required,uuid4"`
	Name          string  `validate:"required,min=2,max=120"`
	Email         *string `validate:"omitempty,email"`
	Phone         string  `validate:"required,e164"`
	PasswordHash  string  `validate:"required"`
	Role          Role    `validate:"required,oneof=CUSTOMER DEALER TECHNICIAN ADMIN SUPER_ADMIN"`
	PhoneVerified bool
	EmailVerified bool
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a user with a fresh ID. An empty email is stored as nil.
func NewUser(name, email, phone, passwordHash string, role Role) *User {
	now := time.Now().UTC()
	u := &User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if email = NormalizeEmail(email); email != "" {
		u.Email = &email
	}
	return u
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.Struct(u)
}

// EmailAddress returns the email or an empty string
func (u *User) EmailAddress() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}

// Principal returns the identity the user acts as
func (u *User) Principal() *Principal {
	return &Principal{UserID: u.ID, Role: u.Role, Name: u.Name}
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package users

import "time"

// Session is a bearer token session. Only the sha256 hash of the token is stored.
type Session struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is no longer valid at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Principal is the authenticated caller of an operation
type Principal struct {
	UserID string
	Role   Role
	Name   string
}

// IsAdmin reports whether the principal is an ADMIN or SUPER_ADMIN
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role.IsAdmin()
}

// HasRole reports whether the principal has one of roles
func (p *Principal) HasRole(roles ...Role) bool {
	if p == nil {
		return false
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// LoginResult is returned once on login. Token is never persisted in plain form.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// CreateAdminInput describes an admin account created by a super admin
type CreateAdminInput struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,e164"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Super    bool   `json:"super"`
}

package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// BootstrapAdminSettings describes the super admin created on first start
type BootstrapAdminSettings struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email" validate:"omitempty,email"`
	Phone    string `yaml:"phone" validate:"omitempty,e164"`
	Password string `yaml:"password" validate:"omitempty,min=8"`
}

// Enabled reports whether a bootstrap super admin is configured
func (s *BootstrapAdminSettings) Enabled() bool {
	return s.Email != "" && s.Phone != "" && s.Password != ""
}

// AuthSettings configures session handling
type AuthSettings struct {
	SessionTTL     time.Duration          `yaml:"session_ttl"`
	BootstrapAdmin BootstrapAdminSettings `yaml:"bootstrap_admin"`
}

// TTL returns the session lifetime, defaulting to 24 hours
func (s *AuthSettings) TTL() time.Duration {
	if s.SessionTTL <= 0 {
		return 24 * time.Hour
	}
	return s.SessionTTL
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}

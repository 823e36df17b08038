package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds the connection settings for the relational store
type DatabaseSettings struct {
	Type string `yaml:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `yaml:"dsn" validate:"required"`
	Name string `yaml:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.Name == "" {
		return fmt.Errorf("database name is required for postgres")
	}

	return nil
}

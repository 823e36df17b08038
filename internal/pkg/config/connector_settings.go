package config

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// BlobConnectorSettings configures where uploaded documents and images are stored
type BlobConnectorSettings struct {
	CloudProvider    string `yaml:"cloud_provider" validate:"required,oneof=azure local"`
	ConnectionString string `yaml:"connection_string"`
	ContainerName    string `yaml:"container_name"`
	LocalPath        string `yaml:"local_path"`
}

// Validate checks that all fields in BlobConnectorSettings are valid
func (s *BlobConnectorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BlobConnectorSettings: %w", err)
	}

	switch s.CloudProvider {
	case AzureCloudProvider:
		if s.ConnectionString == "" || s.ContainerName == "" {
			return fmt.Errorf("connection string and container name are required for azure")
		}
	case LocalCloudProvider:
		if s.LocalPath == "" {
			return fmt.Errorf("local path is required for the local blob connector")
		}
	}

	return nil
}

// DocumentSettings configures KYC document handling
type DocumentSettings struct {
	// EncryptionKey is a base64 encoded AES key (16, 24 or 32 bytes). Empty disables encryption.
	EncryptionKey string `yaml:"encryption_key"`
	MaxFileSizeMB int    `yaml:"max_file_size_mb" validate:"omitempty,min=1,max=50"`
}

// Key decodes the configured encryption key, returning nil when none is set
func (s *DocumentSettings) Key() ([]byte, error) {
	if s.EncryptionKey == "" {
		return nil, nil
	}

	key, err := base64.StdEncoding.DecodeString(s.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("documents encryption key is not valid base64: %w", err)
	}

	switch len(key) {
	case 16, 24, 32:
		return key, nil
	default:
		return nil, fmt.Errorf("documents encryption key must be 16, 24 or 32 bytes, got %d", len(key))
	}
}

// MaxFileSize returns the upload limit in bytes
func (s *DocumentSettings) MaxFileSize() int64 {
	if s.MaxFileSizeMB <= 0 {
		return 10 << 20
	}
	return int64(s.MaxFileSizeMB) << 20
}

// Validate checks that all fields in DocumentSettings are valid
func (s *DocumentSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for DocumentSettings: %w", err)
	}
	_, err := s.Key()
	return err
}

// IdentitySettings configures the third-party identity token verifier
type IdentitySettings struct {
	Provider string        `yaml:"provider" validate:"required,oneof=identitytoolkit insecure"`
	BaseURL  string        `yaml:"base_url" validate:"omitempty,url"`
	APIKey   string        `yaml:"api_key"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Validate checks that all fields in IdentitySettings are valid
func (s *IdentitySettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for IdentitySettings: %w", err)
	}
	if s.Provider == IdentityToolkitProvider && s.APIKey == "" {
		return fmt.Errorf("api key is required for the identitytoolkit provider")
	}
	return nil
}

// AssistantSettings configures the AI assistant behind the audit widget
type AssistantSettings struct {
	Provider string        `yaml:"provider" validate:"required,oneof=genai disabled"`
	APIKey   string        `yaml:"api_key"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Validate checks that all fields in AssistantSettings are valid
func (s *AssistantSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for AssistantSettings: %w", err)
	}
	if s.Provider == AssistantGenAI && s.APIKey == "" {
		return fmt.Errorf("api key is required for the genai assistant")
	}
	return nil
}

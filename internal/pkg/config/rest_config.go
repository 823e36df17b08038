package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// RestConfig is the root configuration of the REST API and the CLI
type RestConfig struct {
	Port          string                `yaml:"port" validate:"required"`
	Environment   string                `yaml:"environment" validate:"required,oneof=development production"`
	Database      DatabaseSettings      `yaml:"database"`
	Logger        LoggerSettings        `yaml:"logger"`
	BlobConnector BlobConnectorSettings `yaml:"blob_connector"`
	Documents     DocumentSettings      `yaml:"documents"`
	Identity      IdentitySettings      `yaml:"identity"`
	Notifications NotificationSettings  `yaml:"notifications"`
	Assistant     AssistantSettings     `yaml:"assistant"`
	Auth          AuthSettings          `yaml:"auth"`
}

// IsDevelopment reports whether the service runs in development mode
func (c *RestConfig) IsDevelopment() bool {
	return c.Environment == EnvironmentDevelopment
}

// InitializeRestConfig reads the YAML file at path, applies environment overrides and validates the result
func InitializeRestConfig(path string) (*RestConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := DefaultRestConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultRestConfig returns a configuration suitable for local development
func DefaultRestConfig() *RestConfig {
	return &RestConfig{
		Port:        "8080",
		Environment: EnvironmentDevelopment,
		Database: DatabaseSettings{
			Type: SqliteDbType,
			DSN:  "servicehub.db",
		},
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
		BlobConnector: BlobConnectorSettings{
			CloudProvider: LocalCloudProvider,
			LocalPath:     "data/blobs",
		},
		Identity: IdentitySettings{
			Provider: InsecureIdentityProvider,
		},
		Notifications: NotificationSettings{
			Queue: QueueDirect,
		},
		Assistant: AssistantSettings{
			Provider: AssistantDisabled,
		},
	}
}

func (c *RestConfig) applyEnvOverrides() {
	overrides := map[string]*string{
		"SERVICEHUB_PORT":              &c.Port,
		"SERVICEHUB_ENVIRONMENT":       &c.Environment,
		"SERVICEHUB_DB_TYPE":           &c.Database.Type,
		"SERVICEHUB_DB_DSN":            &c.Database.DSN,
		"SERVICEHUB_DB_NAME":           &c.Database.Name,
		"SERVICEHUB_BLOB_CONNECTION":   &c.BlobConnector.ConnectionString,
		"SERVICEHUB_IDENTITY_API_KEY":  &c.Identity.APIKey,
		"SERVICEHUB_WHATSAPP_TOKEN":    &c.Notifications.WhatsApp.AccessToken,
		"SERVICEHUB_SMTP_PASSWORD":     &c.Notifications.Email.Password,
		"SERVICEHUB_ASSISTANT_API_KEY": &c.Assistant.APIKey,
		"SERVICEHUB_DOCUMENTS_KEY":     &c.Documents.EncryptionKey,
	}

	for name, target := range overrides {
		if value, ok := os.LookupEnv(name); ok && strings.TrimSpace(value) != "" {
			*target = value
		}
	}

	if brokers := os.Getenv("SERVICEHUB_KAFKA_BROKERS"); brokers != "" {
		c.Notifications.Kafka.Brokers = strings.Split(brokers, ",")
	}
}

// Validate checks the root fields and every nested settings block
func (c *RestConfig) Validate() error {
	if err := validator.New().StructPartial(c, "Port", "Environment"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	validators := []interface{ Validate() error }{
		&c.Database,
		&c.Logger,
		&c.BlobConnector,
		&c.Documents,
		&c.Identity,
		&c.Notifications,
		&c.Assistant,
		&c.Auth,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return nil
}

package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// EmailSettings configures the SMTP sender
type EmailSettings struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host" validate:"required_if=Enabled true"`
	Port     int    `yaml:"port" validate:"required_if=Enabled true"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from" validate:"omitempty,email"`
}

// WhatsAppSettings configures the WhatsApp Cloud API sender
type WhatsAppSettings struct {
	Enabled       bool          `yaml:"enabled"`
	BaseURL       string        `yaml:"base_url" validate:"omitempty,url"`
	PhoneNumberID string        `yaml:"phone_number_id" validate:"required_if=Enabled true"`
	AccessToken   string        `yaml:"access_token" validate:"required_if=Enabled true"`
	Timeout       time.Duration `yaml:"timeout"`
}

// KafkaSettings configures the notification queue
type KafkaSettings struct {
	Brokers      []string `yaml:"brokers"`
	Topic        string   `yaml:"topic"`
	GroupID      string   `yaml:"group_id"`
	InlineWorker bool     `yaml:"inline_worker"`
}

// NotificationSettings groups the notification channels and delivery mode
type NotificationSettings struct {
	Queue    string           `yaml:"queue" validate:"required,oneof=direct kafka"`
	Email    EmailSettings    `yaml:"email"`
	WhatsApp WhatsAppSettings `yaml:"whatsapp"`
	Kafka    KafkaSettings    `yaml:"kafka"`
}

// Validate checks that all fields in NotificationSettings are valid
func (s *NotificationSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for NotificationSettings: %w", err)
	}

	if s.Email.Enabled && s.Email.From == "" {
		return fmt.Errorf("email sender address is required when email is enabled")
	}

	if s.WhatsApp.Enabled && s.WhatsApp.BaseURL == "" {
		return fmt.Errorf("whatsapp base url is required when whatsapp is enabled")
	}

	if s.Queue == QueueKafka {
		if len(s.Kafka.Brokers) == 0 || s.Kafka.Topic == "" {
			return fmt.Errorf("kafka brokers and topic are required when queue is kafka")
		}
		if s.Kafka.GroupID == "" {
			return fmt.Errorf("kafka group id is required when queue is kafka")
		}
	}

	return nil
}

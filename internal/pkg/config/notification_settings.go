package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Notification transports
const (
	NotificationTransportMessages = "messages"
	NotificationTransportSendGrid = "sendgrid"
	NotificationTransportLog      = "log"
)

// NotificationSettings configures how intake and status change notices leave the service.
type NotificationSettings struct {
	Transport        string        `mapstructure:"transport" yaml:"transport" validate:"required,oneof=messages sendgrid log"`
	MessagesURL      string        `mapstructure:"messages_url" yaml:"messages_url" validate:"omitempty,url"`
	SendGridAPIKey   string        `mapstructure:"sendgrid_api_key" yaml:"sendgrid_api_key"`
	FromAddress      string        `mapstructure:"from_address" yaml:"from_address" validate:"omitempty,email"`
	Timeout          time.Duration `mapstructure:"timeout" yaml:"timeout"`
	RetryAttempts    uint          `mapstructure:"retry_attempts" yaml:"retry_attempts" validate:"max=10"`
	RetryDelay       time.Duration `mapstructure:"retry_delay" yaml:"retry_delay"`
	IntakeRecipients []string      `mapstructure:"intake_recipients" yaml:"intake_recipients" validate:"min=1,dive,email"`
	StatusRecipients []string      `mapstructure:"status_recipients" yaml:"status_recipients" validate:"min=1,dive,email"`
}

// Validate checks that all fields in NotificationSettings are valid
func (s *NotificationSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for NotificationSettings: %w", err)
	}

	switch s.Transport {
	case NotificationTransportMessages:
		if s.MessagesURL == "" {
			return fmt.Errorf("messages url is required for the messages transport")
		}
	case NotificationTransportSendGrid:
		if s.SendGridAPIKey == "" {
			return fmt.Errorf("sendgrid api key is required for the sendgrid transport")
		}
		if s.FromAddress == "" {
			return fmt.Errorf("from address is required for the sendgrid transport")
		}
	}

	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// AuthSettings configures session handling.
type AuthSettings struct {
	SessionTTL time.Duration `mapstructure:"session_ttl" yaml:"session_ttl"`
	CookieName string        `mapstructure:"cookie_name" yaml:"cookie_name" validate:"required"`
}

// RestConfig is the complete configuration of the REST API and the CLI.
type RestConfig struct {
	Port          string               `mapstructure:"port" yaml:"port" validate:"required,numeric"`
	AppURL        string               `mapstructure:"app_url" yaml:"app_url" validate:"required,url"`
	Logger        LoggerSettings       `mapstructure:"logger" yaml:"logger" validate:"-"`
	Database      DatabaseSettings     `mapstructure:"database" yaml:"database" validate:"-"`
	Notifications NotificationSettings `mapstructure:"notifications" yaml:"notifications" validate:"-"`
	Features      FeatureSettings      `mapstructure:"features" yaml:"features" validate:"-"`
	Auth          AuthSettings         `mapstructure:"auth" yaml:"auth"`
}

// Validate checks the top level fields and every nested settings block.
// Database settings are ignored when the in-memory store is selected.
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if !c.Features.SkipDBEnabled() {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	if err := c.Notifications.Validate(); err != nil {
		return err
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	return nil
}

// Redacted returns a copy safe to print: credentials are masked.
func (c RestConfig) Redacted() RestConfig {
	const mask = "********"
	if c.Database.DSN != "" && c.Database.Type == PostgresDbType {
		c.Database.DSN = mask
	}
	if c.Notifications.SendGridAPIKey != "" {
		c.Notifications.SendGridAPIKey = mask
	}
	return c
}

// envBindings maps config keys to the environment variables that can provide them.
// The first name wins when several are set.
var envBindings = map[string][]string{
	"port":                                 {"PORT"},
	"app_url":                              {"NEXTAUTH_URL", "APP_URL"},
	"logger.log_level":                     {"LOG_LEVEL"},
	"logger.log_type":                      {"LOG_TYPE"},
	"logger.file_path":                     {"LOG_FILE_PATH"},
	"database.type":                        {"DATABASE_TYPE"},
	"database.dsn":                         {"DATABASE_URL"},
	"database.name":                        {"DATABASE_NAME"},
	"notifications.transport":              {"NOTIFICATION_TRANSPORT"},
	"notifications.messages_url":           {"MESSAGES_URL"},
	"notifications.sendgrid_api_key":       {"SENDGRID_API_KEY"},
	"notifications.from_address":           {"NOTIFICATION_FROM_ADDRESS"},
	"features.skip_db":                     {"SKIP_DB"},
	"features.skip_auth":                   {"SKIP_AUTH"},
	"features.enable_status_notifications": {"ENABLE_STATUS_NOTIFICATIONS"},
	"features.enable_traffic_light_status": {"NEXT_PUBLIC_ENABLE_TRAFFIC_LIGHT_STATUS"},
	"auth.session_ttl":                     {"SESSION_TTL"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("app_url", "http://localhost:3000")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "lvj.db")
	v.SetDefault("notifications.transport", NotificationTransportMessages)
	v.SetDefault("notifications.messages_url", "http://localhost:3000/api/messages")
	v.SetDefault("notifications.timeout", 10*time.Second)
	v.SetDefault("notifications.retry_attempts", 3)
	v.SetDefault("notifications.retry_delay", 500*time.Millisecond)
	v.SetDefault("notifications.intake_recipients", []string{"legal@lvj.com", "admin@lvj.com"})
	v.SetDefault("notifications.status_recipients", []string{"admin@lvj.com"})
	v.SetDefault("auth.session_ttl", 30*24*time.Hour)
	v.SetDefault("auth.cookie_name", "session_token")
}

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

// InitializeRestConfig loads the config from filePath, falling back to defaults and
// environment variables when the file does not exist. Environment variables always
// override file values.
func InitializeRestConfig(filePath string) (*RestConfig, error) {
	v := viper.New()
	setDefaults(v)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if filePath != "" {
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			v.SetConfigFile(filePath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
			}
		}
	}

	cfg := &RestConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

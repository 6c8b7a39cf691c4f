package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Supported database types
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings describes the relational store backing the repositories.
// Name is optional for postgres; when set the database is created on first connect.
type DatabaseSettings struct {
	Type string `mapstructure:"type" yaml:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn" yaml:"dsn"`
	Name string `mapstructure:"name" yaml:"name" validate:"omitempty,alphanum"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for postgres")
	}

	return nil
}

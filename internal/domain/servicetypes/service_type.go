package servicetypes

import (
	"strings"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/pkg/validators"
)

// Public messages shared by every storage backend.
const (
	NotFoundMessage      = "Service type not found"
	TitleConflictMessage = "A service type with this title already exists."
)

// ServiceType is a catalog entry describing a kind of legal service offered.
type ServiceType struct {
	ID          string    `validate:"required"`
	Title       string    `validate:"required,min=1,max=255"`
	Description *string   `validate:"omitempty,max=2000"`
	CreatedAt   time.Time `validate:"required"`
	UpdatedAt   time.Time
}

// Validate for validating ServiceType struct
func (s *ServiceType) Validate() error {
	return validators.Struct(s, nil)
}

// ServiceTypeInput carries the writable fields for create and update.
type ServiceTypeInput struct {
	Title       string
	Description *string
}

// Normalize trims the title and drops a blank description.
func (in ServiceTypeInput) Normalize() ServiceTypeInput {
	in.Title = strings.TrimSpace(in.Title)
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		if d == "" {
			in.Description = nil
		} else {
			in.Description = &d
		}
	}
	return in
}

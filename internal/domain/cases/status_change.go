package cases

import (
	"time"

	"github.com/Khaledaun/LVJAPP/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Audit modes.
const (
	ModeDatabase = "database"
	ModeMock     = "mock"
)

// StatusChange is the audit record of one status transition.
type StatusChange struct {
	ID                   string        `validate:"required"`
	CaseID               string        `validate:"required"`
	ChangedBy            string        `validate:"required"`
	ChangedByLabel       string        `validate:"required"`
	PreviousStatus       OverallStatus `validate:"required,overallstatus"`
	NewStatus            OverallStatus `validate:"required,overallstatus"`
	NotificationsEnabled bool
	Mode                 string    `validate:"required,oneof=database mock"`
	CreatedAt            time.Time `validate:"required"`
}

// Validate for validating StatusChange struct
func (s *StatusChange) Validate() error {
	return validators.Struct(s, map[string]validator.Func{
		"overallstatus": validators.Enum(statusNames()...),
	})
}

// StatusUpdateResult is returned by CaseService.UpdateStatus.
// PreviousStatus and NewStatus are empty when the status did not change.
type StatusUpdateResult struct {
	Case             *Case
	NotificationSent bool
	PreviousStatus   OverallStatus
	NewStatus        OverallStatus
	Message          string
}

// StatusUnchangedMessage is reported when the requested status equals the current one.
const StatusUnchangedMessage = "Status unchanged"

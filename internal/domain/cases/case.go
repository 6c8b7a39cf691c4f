package cases

import (
	"fmt"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/billing"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Defaults applied to newly created cases.
const (
	DefaultStage                = "Intake"
	DefaultUrgency              = "STANDARD"
	DefaultCurrency             = "USD"
	DefaultCompletionPercentage = 5
)

// Public messages shared by every storage backend.
const (
	NotFoundMessage       = "Case not found"
	NumberConflictMessage = "A case with this number already exists."
)

// Case is a client's immigration matter record.
type Case struct {
	ID                   string        `validate:"required"`
	CaseNumber           string        `validate:"required,max=64"`
	Title                string        `validate:"required,max=255"`
	ApplicantName        string        `validate:"required,max=255"`
	ApplicantEmail       string        `validate:"required,email"`
	ClientID             *string       `validate:"omitempty"`
	CaseManagerID        *string       `validate:"omitempty"`
	LawyerID             *string       `validate:"omitempty"`
	ServiceTypeID        *string       `validate:"omitempty"`
	OverallStatus        OverallStatus `validate:"required,overallstatus"`
	Stage                string        `validate:"required,max=64"`
	UrgencyLevel         string        `validate:"required,oneof=STANDARD LOW MEDIUM HIGH URGENT"`
	CompletionPercentage int           `validate:"min=0,max=100"`
	TotalFee             int64         `validate:"min=0"`
	Currency             string        `validate:"required,len=3"`
	CreatedAt            time.Time     `validate:"required"`
	UpdatedAt            time.Time

	// Read models populated by List and GetByID.
	ServiceType *ServiceTypeSummary `validate:"-"`
	Client      *PartySummary       `validate:"-"`
	CaseManager *PartySummary       `validate:"-"`
	Lawyer      *PartySummary       `validate:"-"`
}

// ServiceTypeSummary is the part of a service type embedded in case listings.
type ServiceTypeSummary struct {
	ID          string
	Title       string
	Description *string
}

// PartySummary is the part of a user embedded in case listings.
type PartySummary struct {
	ID    string
	Name  string
	Email string
}

// Validate for validating Case struct
func (c *Case) Validate() error {
	return validators.Struct(c, map[string]validator.Func{
		"overallstatus": validators.Enum(statusNames()...),
	})
}

// NewCaseNumber formats the public case number from a creation time.
func NewCaseNumber(t time.Time) string {
	return fmt.Sprintf("LVJ-%d", t.UnixMilli())
}

// IsParticipant reports whether userID manages or represents the case.
func (c *Case) IsParticipant(userID string) bool {
	return (c.CaseManagerID != nil && *c.CaseManagerID == userID) ||
		(c.LawyerID != nil && *c.LawyerID == userID)
}

// CanBeManagedBy is true for admins and for staff participating in the case.
func (c *Case) CanBeManagedBy(actor *users.Actor) bool {
	if actor.Role.IsAdmin() {
		return true
	}
	return actor.Role.IsStaff() && c.IsParticipant(actor.ID)
}

// CanBeViewedBy extends CanBeManagedBy with the owning client.
func (c *Case) CanBeViewedBy(actor *users.Actor) bool {
	if c.CanBeManagedBy(actor) {
		return true
	}
	return actor.Role.IsClient() && c.ClientID != nil && *c.ClientID == actor.ID
}

// CaseDetail is a case with its documents and payments.
type CaseDetail struct {
	Case      *Case
	Documents []*billing.Document
	Payments  []*billing.Payment
}

// CreateCaseInput carries the intake form fields.
type CreateCaseInput struct {
	Title          string
	ApplicantName  string
	ApplicantEmail string
	ServiceTypeID  *string
}

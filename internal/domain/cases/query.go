package cases

import (
	"github.com/Khaledaun/LVJAPP/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// CaseQuery filters case listings. Empty fields do not filter.
type CaseQuery struct {
	ClientID      string
	ParticipantID string        // matches case manager or lawyer
	OverallStatus OverallStatus `validate:"omitempty,overallstatus"`
	Limit         int           `validate:"omitempty,gt=0"`
	Offset        int           `validate:"omitempty,gte=0"`
	SortBy        string        `validate:"omitempty,oneof=created_at updated_at title case_number"`
	SortOrder     string        `validate:"omitempty,oneof=asc desc"`
}

// NewCaseQuery returns a query ordered newest first.
func NewCaseQuery() *CaseQuery {
	return &CaseQuery{
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// Validate for validating CaseQuery struct
func (q *CaseQuery) Validate() error {
	return validators.Struct(q, map[string]validator.Func{
		"overallstatus": validators.Enum(statusNames()...),
	})
}

// CaseCountFilter narrows Count. Statuses and ExcludeStatuses combine with AND.
type CaseCountFilter struct {
	ClientID        string
	ParticipantID   string
	ServiceTypeID   string
	Statuses        []OverallStatus
	ExcludeStatuses []OverallStatus
}

package models

import (
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"

	"gorm.io/datatypes"
)

// StatusChangeDetails is stored as JSON next to the indexed audit columns.
type StatusChangeDetails struct {
	ChangedByLabel string `json:"changedByLabel"`
	Notifications  string `json:"notifications"`
}

// Notification flag values in StatusChangeDetails
const (
	NotificationsEnabled  = "ENABLED"
	NotificationsDisabled = "DISABLED"
)

// StatusChangeModel is the GORM database model for the status audit trail
type StatusChangeModel struct {
	ID             string                                  `gorm:"primaryKey;type:varchar(64)"`
	CaseID         string                                  `gorm:"not null;index;type:varchar(64)"`
	ChangedBy      string                                  `gorm:"not null;index;type:varchar(64)"`
	PreviousStatus string                                  `gorm:"not null;type:varchar(32)"`
	NewStatus      string                                  `gorm:"not null;type:varchar(32)"`
	Mode           string                                  `gorm:"not null;type:varchar(16)"`
	Details        datatypes.JSONType[StatusChangeDetails] `gorm:"type:json"`
	CreatedAt      time.Time                               `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (StatusChangeModel) TableName() string {
	return "case_status_changes"
}

// ToDomain converts GORM model to domain entity
func (m *StatusChangeModel) ToDomain() *cases.StatusChange {
	details := m.Details.Data()
	return &cases.StatusChange{
		ID:                   m.ID,
		CaseID:               m.CaseID,
		ChangedBy:            m.ChangedBy,
		ChangedByLabel:       details.ChangedByLabel,
		PreviousStatus:       cases.OverallStatus(m.PreviousStatus),
		NewStatus:            cases.OverallStatus(m.NewStatus),
		NotificationsEnabled: details.Notifications == NotificationsEnabled,
		Mode:                 m.Mode,
		CreatedAt:            m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *StatusChangeModel) FromDomain(s *cases.StatusChange) {
	flag := NotificationsDisabled
	if s.NotificationsEnabled {
		flag = NotificationsEnabled
	}

	m.ID = s.ID
	m.CaseID = s.CaseID
	m.ChangedBy = s.ChangedBy
	m.PreviousStatus = string(s.PreviousStatus)
	m.NewStatus = string(s.NewStatus)
	m.Mode = s.Mode
	m.Details = datatypes.NewJSONType(StatusChangeDetails{
		ChangedByLabel: s.ChangedByLabel,
		Notifications:  flag,
	})
	m.CreatedAt = s.CreatedAt
}

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&SessionModel{},
		&ServiceTypeModel{},
		&PartnerRoleModel{},
		&CaseModel{},
		&DocumentModel{},
		&PaymentModel{},
		&StatusChangeModel{},
	}
}

package models

import (
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/servicetypes"
)

// ServiceTypeModel is the GORM database model for the service catalog
type ServiceTypeModel struct {
	ID          string  `gorm:"primaryKey;type:varchar(64)"`
	Title       string  `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ServiceTypeModel) TableName() string {
	return "service_types"
}

// ToDomain converts GORM model to domain entity
func (m *ServiceTypeModel) ToDomain() *servicetypes.ServiceType {
	return &servicetypes.ServiceType{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ServiceTypeModel) FromDomain(s *servicetypes.ServiceType) {
	m.ID = s.ID
	m.Title = s.Title
	m.Description = s.Description
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

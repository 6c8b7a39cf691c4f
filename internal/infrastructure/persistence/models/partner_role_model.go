package models

import "github.com/Khaledaun/LVJAPP/internal/domain/partnerroles"

// PartnerRoleModel is the GORM database model for partner roles
type PartnerRoleModel struct {
	ID          string  `gorm:"primaryKey;type:varchar(64)"`
	Name        string  `gorm:"not null;uniqueIndex;type:varchar(120)"`
	Description *string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (PartnerRoleModel) TableName() string {
	return "partner_roles"
}

// ToDomain converts GORM model to domain entity
func (m *PartnerRoleModel) ToDomain() *partnerroles.PartnerRole {
	return &partnerroles.PartnerRole{ID: m.ID, Name: m.Name, Description: m.Description}
}

// FromDomain converts domain entity to GORM model
func (m *PartnerRoleModel) FromDomain(p *partnerroles.PartnerRole) {
	m.ID = p.ID
	m.Name = p.Name
	m.Description = p.Description
}

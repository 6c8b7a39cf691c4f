package models

import (
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
)

// CaseModel is the GORM database model for immigration cases
type CaseModel struct {
	ID                   string    `gorm:"primaryKey;type:varchar(64)"`
	CaseNumber           string    `gorm:"not null;uniqueIndex;type:varchar(64)"`
	Title                string    `gorm:"not null;type:varchar(255)"`
	ApplicantName        string    `gorm:"not null;type:varchar(255)"`
	ApplicantEmail       string    `gorm:"not null;type:varchar(255)"`
	ClientID             *string   `gorm:"index;type:varchar(64)"`
	CaseManagerID        *string   `gorm:"index;type:varchar(64)"`
	LawyerID             *string   `gorm:"index;type:varchar(64)"`
	ServiceTypeID        *string   `gorm:"index;type:varchar(64)"`
	OverallStatus        string    `gorm:"not null;index;type:varchar(32)"`
	Stage                string    `gorm:"not null;type:varchar(64)"`
	UrgencyLevel         string    `gorm:"not null;type:varchar(16)"`
	CompletionPercentage int       `gorm:"not null;default:0"`
	TotalFee             int64     `gorm:"not null;default:0"`
	Currency             string    `gorm:"not null;type:varchar(3)"`
	CreatedAt            time.Time `gorm:"not null;index"`
	UpdatedAt            time.Time

	ServiceType *ServiceTypeModel `gorm:"foreignKey:ServiceTypeID;constraint:OnDelete:RESTRICT"`
	Client      *UserModel        `gorm:"foreignKey:ClientID"`
	CaseManager *UserModel        `gorm:"foreignKey:CaseManagerID"`
	Lawyer      *UserModel        `gorm:"foreignKey:LawyerID"`
}

// TableName specifies the table name for GORM
func (CaseModel) TableName() string {
	return "cases"
}

// ToDomain converts GORM model to domain entity, including any preloaded relations
func (m *CaseModel) ToDomain() *cases.Case {
	c := &cases.Case{
		ID:                   m.ID,
		CaseNumber:           m.CaseNumber,
		Title:                m.Title,
		ApplicantName:        m.ApplicantName,
		ApplicantEmail:       m.ApplicantEmail,
		ClientID:             m.ClientID,
		CaseManagerID:        m.CaseManagerID,
		LawyerID:             m.LawyerID,
		ServiceTypeID:        m.ServiceTypeID,
		OverallStatus:        cases.OverallStatus(m.OverallStatus),
		Stage:                m.Stage,
		UrgencyLevel:         m.UrgencyLevel,
		CompletionPercentage: m.CompletionPercentage,
		TotalFee:             m.TotalFee,
		Currency:             m.Currency,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
		Client:               partySummary(m.Client),
		CaseManager:          partySummary(m.CaseManager),
		Lawyer:               partySummary(m.Lawyer),
	}
	if m.ServiceType != nil {
		c.ServiceType = &cases.ServiceTypeSummary{
			ID:          m.ServiceType.ID,
			Title:       m.ServiceType.Title,
			Description: m.ServiceType.Description,
		}
	}
	return c
}

func partySummary(u *UserModel) *cases.PartySummary {
	if u == nil {
		return nil
	}
	return &cases.PartySummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// FromDomain converts domain entity to GORM model. Read models are not copied.
func (m *CaseModel) FromDomain(c *cases.Case) {
	m.ID = c.ID
	m.CaseNumber = c.CaseNumber
	m.Title = c.Title
	m.ApplicantName = c.ApplicantName
	m.ApplicantEmail = c.ApplicantEmail
	m.ClientID = c.ClientID
	m.CaseManagerID = c.CaseManagerID
	m.LawyerID = c.LawyerID
	m.ServiceTypeID = c.ServiceTypeID
	m.OverallStatus = string(c.OverallStatus)
	m.Stage = c.Stage
	m.UrgencyLevel = c.UrgencyLevel
	m.CompletionPercentage = c.CompletionPercentage
	m.TotalFee = c.TotalFee
	m.Currency = c.Currency
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

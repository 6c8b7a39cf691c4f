package models

import (
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/billing"
)

// PaymentModel is the GORM database model for case payments
type PaymentModel struct {
	ID            string  `gorm:"primaryKey;type:varchar(64)"`
	CaseID        string  `gorm:"not null;index;type:varchar(64)"`
	Description   string  `gorm:"not null;type:varchar(255)"`
	Amount        int64   `gorm:"not null"`
	Currency      string  `gorm:"not null;type:varchar(3)"`
	Status        string  `gorm:"not null;index;type:varchar(16)"`
	InvoiceNumber *string `gorm:"uniqueIndex;type:varchar(64)"`
	DueDate       *time.Time
	PaidAt        *time.Time
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts GORM model to domain entity
func (m *PaymentModel) ToDomain() *billing.Payment {
	return &billing.Payment{
		ID:            m.ID,
		CaseID:        m.CaseID,
		Description:   m.Description,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Status:        m.Status,
		InvoiceNumber: m.InvoiceNumber,
		DueDate:       m.DueDate,
		PaidAt:        m.PaidAt,
		CreatedAt:     m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PaymentModel) FromDomain(p *billing.Payment) {
	m.ID = p.ID
	m.CaseID = p.CaseID
	m.Description = p.Description
	m.Amount = p.Amount
	m.Currency = p.Currency
	m.Status = p.Status
	m.InvoiceNumber = p.InvoiceNumber
	m.DueDate = p.DueDate
	m.PaidAt = p.PaidAt
	m.CreatedAt = p.CreatedAt
}

// DocumentModel is the GORM database model for case documents
type DocumentModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	CaseID    string    `gorm:"not null;index;type:varchar(64)"`
	Name      string    `gorm:"not null;type:varchar(255)"`
	State     string    `gorm:"not null;type:varchar(16)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDomain converts GORM model to domain entity
func (m *DocumentModel) ToDomain() *billing.Document {
	return &billing.Document{
		ID:        m.ID,
		CaseID:    m.CaseID,
		Name:      m.Name,
		State:     m.State,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DocumentModel) FromDomain(d *billing.Document) {
	m.ID = d.ID
	m.CaseID = d.CaseID
	m.Name = d.Name
	m.State = d.State
	m.CreatedAt = d.CreatedAt
}

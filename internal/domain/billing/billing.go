package billing

import (
	"context"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/pkg/validators"
)

// Payment states
const (
	PaymentUnpaid   = "unpaid"
	PaymentPaid     = "paid"
	PaymentOverdue  = "overdue"
	PaymentRefunded = "refunded"
)

// Document states
const (
	DocumentRequested = "requested"
	DocumentUploaded  = "uploaded"
	DocumentApproved  = "approved"
	DocumentRejected  = "rejected"
)

// Payment is an invoice line attached to a case. Amount is in minor units.
type Payment struct {
	ID            string  `validate:"required"`
	CaseID        string  `validate:"required"`
	Description   string  `validate:"required,max=255"`
	Amount        int64   `validate:"min=0"`
	Currency      string  `validate:"required,len=3"`
	Status        string  `validate:"required,oneof=unpaid paid overdue refunded"`
	InvoiceNumber *string `validate:"omitempty,max=64"`
	DueDate       *time.Time
	PaidAt        *time.Time
	CreatedAt     time.Time `validate:"required"`
}

// Validate for validating Payment struct
func (p *Payment) Validate() error {
	return validators.Struct(p, nil)
}

// Document is a file requested from or supplied by the applicant.
type Document struct {
	ID        string    `validate:"required"`
	CaseID    string    `validate:"required"`
	Name      string    `validate:"required,max=255"`
	State     string    `validate:"required,oneof=requested uploaded approved rejected"`
	CreatedAt time.Time `validate:"required"`
}

// Validate for validating Document struct
func (d *Document) Validate() error {
	return validators.Struct(d, nil)
}

// PaymentRepository defines the interface for Payment persistence
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	ListByCase(ctx context.Context, caseID string) ([]*Payment, error)
}

// DocumentRepository defines the interface for Document persistence
type DocumentRepository interface {
	Create(ctx context.Context, document *Document) error
	ListByCase(ctx context.Context, caseID string) ([]*Document, error)
}

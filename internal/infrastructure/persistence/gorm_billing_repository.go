package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Khaledaun/LVJAPP/internal/domain/billing"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/persistence/models"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPaymentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPaymentRepository creates a new GORM-based PaymentRepository implementation
func NewGormPaymentRepository(db *gorm.DB, logger logger.Logger) (billing.PaymentRepository, error) {
	return &gormPaymentRepository{db: db, logger: logger}, nil
}

func (r *gormPaymentRepository) Create(ctx context.Context, payment *billing.Payment) error {
	if err := payment.Validate(); err != nil {
		return apperrors.Invalid(fmt.Sprintf("validation error: %v", err))
	}

	model := &models.PaymentModel{}
	model.FromDomain(payment)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("A payment with this invoice number already exists.", err)
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}

	r.logger.Info("Created payment with id ", payment.ID, " for case ", payment.CaseID)
	return nil
}

func (r *gormPaymentRepository) ListByCase(ctx context.Context, caseID string) ([]*billing.Payment, error) {
	var modelList []*models.PaymentModel
	if err := r.db.WithContext(ctx).Where("case_id = ?", caseID).Order("created_at asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	domainList := make([]*billing.Payment, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormDocumentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDocumentRepository creates a new GORM-based DocumentRepository implementation
func NewGormDocumentRepository(db *gorm.DB, logger logger.Logger) (billing.DocumentRepository, error) {
	return &gormDocumentRepository{db: db, logger: logger}, nil
}

func (r *gormDocumentRepository) Create(ctx context.Context, document *billing.Document) error {
	if err := document.Validate(); err != nil {
		return apperrors.Invalid(fmt.Sprintf("validation error: %v", err))
	}

	model := &models.DocumentModel{}
	model.FromDomain(document)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	r.logger.Info("Created document with id ", document.ID, " for case ", document.CaseID)
	return nil
}

func (r *gormDocumentRepository) ListByCase(ctx context.Context, caseID string) ([]*billing.Document, error) {
	var modelList []*models.DocumentModel
	if err := r.db.WithContext(ctx).Where("case_id = ?", caseID).Order("created_at asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}

	domainList := make([]*billing.Document, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

package persistence

import (
	"context"
	"fmt"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/persistence/models"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormStatusChangeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStatusChangeRepository creates a new GORM-based StatusChangeRepository implementation
func NewGormStatusChangeRepository(db *gorm.DB, logger logger.Logger) (cases.StatusChangeRepository, error) {
	return &gormStatusChangeRepository{db: db, logger: logger}, nil
}

func (r *gormStatusChangeRepository) Create(ctx context.Context, change *cases.StatusChange) error {
	if err := change.Validate(); err != nil {
		return apperrors.Invalid(fmt.Sprintf("validation error: %v", err))
	}

	model := &models.StatusChangeModel{}
	model.FromDomain(change)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record status change: %w", err)
	}
	return nil
}

func (r *gormStatusChangeRepository) ListByCase(ctx context.Context, caseID string) ([]*cases.StatusChange, error) {
	var modelList []*models.StatusChangeModel
	if err := r.db.WithContext(ctx).Where("case_id = ?", caseID).Order("created_at asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch status changes: %w", err)
	}

	domainList := make([]*cases.StatusChange, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

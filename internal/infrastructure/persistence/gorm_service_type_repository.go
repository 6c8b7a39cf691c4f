package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Khaledaun/LVJAPP/internal/domain/servicetypes"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/persistence/models"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormServiceTypeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormServiceTypeRepository creates a new GORM-based ServiceTypeRepository implementation
func NewGormServiceTypeRepository(db *gorm.DB, logger logger.Logger) (servicetypes.ServiceTypeRepository, error) {
	return &gormServiceTypeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormServiceTypeRepository) Create(ctx context.Context, serviceType *servicetypes.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return apperrors.Invalid(fmt.Sprintf("validation error: %v", err))
	}

	model := &models.ServiceTypeModel{}
	model.FromDomain(serviceType)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict(servicetypes.TitleConflictMessage, err)
		}
		return fmt.Errorf("failed to create service type: %w", err)
	}

	r.logger.Info("Created service type with id ", serviceType.ID)
	return nil
}

func (r *gormServiceTypeRepository) List(ctx context.Context) ([]*servicetypes.ServiceType, error) {
	var modelList []*models.ServiceTypeModel
	if err := r.db.WithContext(ctx).Order("title asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch service types: %w", err)
	}

	domainList := make([]*servicetypes.ServiceType, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormServiceTypeRepository) GetByID(ctx context.Context, id string) (*servicetypes.ServiceType, error) {
	var model models.ServiceTypeModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(servicetypes.NotFoundMessage)
		}
		return nil, fmt.Errorf("failed to fetch service type: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormServiceTypeRepository) UpdateByID(ctx context.Context, serviceType *servicetypes.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return apperrors.Invalid(fmt.Sprintf("validation error: %v", err))
	}

	result := r.db.WithContext(ctx).
		Model(&models.ServiceTypeModel{}).
		Where("id = ?", serviceType.ID).
		Updates(map[string]interface{}{
			"title":       serviceType.Title,
			"description": serviceType.Description,
			"updated_at":  serviceType.UpdatedAt,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict(servicetypes.TitleConflictMessage, result.Error)
		}
		return fmt.Errorf("failed to update service type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(servicetypes.NotFoundMessage)
	}

	r.logger.Info("Updated service type with id ", serviceType.ID)
	return nil
}

func (r *gormServiceTypeRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ServiceTypeModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete service type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(servicetypes.NotFoundMessage)
	}

	r.logger.Info("Deleted service type with id ", id)
	return nil
}

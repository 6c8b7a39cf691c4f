package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Khaledaun/LVJAPP/internal/domain/partnerroles"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/persistence/models"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPartnerRoleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPartnerRoleRepository creates a new GORM-based PartnerRoleRepository implementation
func NewGormPartnerRoleRepository(db *gorm.DB, logger logger.Logger) (partnerroles.PartnerRoleRepository, error) {
	return &gormPartnerRoleRepository{db: db, logger: logger}, nil
}

func (r *gormPartnerRoleRepository) Create(ctx context.Context, role *partnerroles.PartnerRole) error {
	if err := role.Validate(); err != nil {
		return apperrors.Invalid(fmt.Sprintf("validation error: %v", err))
	}

	model := &models.PartnerRoleModel{}
	model.FromDomain(role)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("A partner role with this name already exists.", err)
		}
		return fmt.Errorf("failed to create partner role: %w", err)
	}

	r.logger.Info("Created partner role with id ", role.ID)
	return nil
}

func (r *gormPartnerRoleRepository) List(ctx context.Context) ([]*partnerroles.PartnerRole, error) {
	var modelList []*models.PartnerRoleModel
	if err := r.db.WithContext(ctx).Order("name asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch partner roles: %w", err)
	}

	domainList := make([]*partnerroles.PartnerRole, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

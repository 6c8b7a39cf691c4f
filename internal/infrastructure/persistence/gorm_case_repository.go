package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/persistence/models"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormCaseRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCaseRepository creates a new GORM-based CaseRepository implementation
func NewGormCaseRepository(db *gorm.DB, logger logger.Logger) (cases.CaseRepository, error) {
	return &gormCaseRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCaseRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("ServiceType").
		Preload("Client").
		Preload("CaseManager").
		Preload("Lawyer")
}

func (r *gormCaseRepository) Create(ctx context.Context, c *cases.Case) error {
	if err := c.Validate(); err != nil {
		return apperrors.Invalid(fmt.Sprintf("validation error: %v", err))
	}

	model := &models.CaseModel{}
	model.FromDomain(c)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict(cases.NumberConflictMessage, err)
		}
		return fmt.Errorf("failed to create case: %w", err)
	}

	r.logger.Info("Created case with id ", c.ID)
	return nil
}

func (r *gormCaseRepository) List(ctx context.Context, query *cases.CaseQuery) ([]*cases.Case, error) {
	if err := query.Validate(); err != nil {
		return nil, apperrors.Invalid(fmt.Sprintf("invalid query parameters: %v", err))
	}

	dbQuery := r.withRelations(ctx).Model(&models.CaseModel{})

	if query.ClientID != "" {
		dbQuery = dbQuery.Where("client_id = ?", query.ClientID)
	}
	if query.ParticipantID != "" {
		dbQuery = dbQuery.Where("case_manager_id = ? OR lawyer_id = ?", query.ParticipantID, query.ParticipantID)
	}
	if query.OverallStatus != "" {
		dbQuery = dbQuery.Where("overall_status = ?", string(query.OverallStatus))
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.CaseModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cases: %w", err)
	}

	domainList := make([]*cases.Case, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCaseRepository) GetByID(ctx context.Context, caseID string) (*cases.Case, error) {
	var model models.CaseModel
	if err := r.withRelations(ctx).Where("id = ?", caseID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(cases.NotFoundMessage)
		}
		return nil, fmt.Errorf("failed to fetch case: %w", err)
	}
	return model.ToDomain(), nil
}

// UpdateStatus writes only the status columns so concurrent edits of other fields survive.
func (r *gormCaseRepository) UpdateStatus(ctx context.Context, c *cases.Case) error {
	if !c.OverallStatus.IsValid() {
		return apperrors.Invalid(fmt.Sprintf("invalid status %q", c.OverallStatus))
	}

	result := r.db.WithContext(ctx).
		Model(&models.CaseModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"overall_status": string(c.OverallStatus),
			"updated_at":     c.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update case status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(cases.NotFoundMessage)
	}

	r.logger.Info("Updated status of case ", c.ID, " to ", c.OverallStatus)
	return nil
}

func (r *gormCaseRepository) Count(ctx context.Context, filter cases.CaseCountFilter) (int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&models.CaseModel{})

	if filter.ClientID != "" {
		dbQuery = dbQuery.Where("client_id = ?", filter.ClientID)
	}
	if filter.ParticipantID != "" {
		dbQuery = dbQuery.Where("case_manager_id = ? OR lawyer_id = ?", filter.ParticipantID, filter.ParticipantID)
	}
	if filter.ServiceTypeID != "" {
		dbQuery = dbQuery.Where("service_type_id = ?", filter.ServiceTypeID)
	}
	if len(filter.Statuses) > 0 {
		dbQuery = dbQuery.Where("overall_status IN ?", statusStrings(filter.Statuses))
	}
	if len(filter.ExcludeStatuses) > 0 {
		dbQuery = dbQuery.Where("overall_status NOT IN ?", statusStrings(filter.ExcludeStatuses))
	}

	var count int64
	if err := dbQuery.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count cases: %w", err)
	}
	return count, nil
}

func statusStrings(statuses []cases.OverallStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

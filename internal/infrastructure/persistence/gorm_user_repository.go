package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/persistence/models"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{db: db, logger: logger}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return apperrors.Invalid(fmt.Sprintf("validation error: %v", err))
	}

	model := &models.UserModel{}
	model.FromDomain(user)
	model.Email = strings.ToLower(model.Email)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict(users.EmailConflictMessage, err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	return r.first(ctx, "id = ?", userID)
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.first(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *gormUserRepository) first(ctx context.Context, where string, arg string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where(where, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(users.UserNotFoundMessage)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

type gormSessionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSessionRepository creates a new GORM-based SessionRepository implementation
func NewGormSessionRepository(db *gorm.DB, logger logger.Logger) (users.SessionRepository, error) {
	return &gormSessionRepository{db: db, logger: logger}, nil
}

func (r *gormSessionRepository) Create(ctx context.Context, session *users.Session) error {
	if err := session.Validate(); err != nil {
		return apperrors.Invalid(fmt.Sprintf("validation error: %v", err))
	}

	model := &models.SessionModel{}
	model.FromDomain(session)

	if err := r.db.WithContext(ctx).Omit("User").Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	r.logger.Info("Created session for user ", session.UserID)
	return nil
}

func (r *gormSessionRepository) GetByToken(ctx context.Context, token string) (*users.Session, error) {
	var model models.SessionModel
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(users.SessionNotFoundMessage)
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/servicetypes"
	"github.com/Khaledaun/LVJAPP/internal/domain/store"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"github.com/google/uuid"
)

// Public messages of the service type operations.
const (
	MsgServiceTypeAdminOnly     = "Not authorized. Only LVJ Admins can manage service types."
	MsgTitleRequired            = "Title is required"
	MsgServiceTypeDeleted       = "Service type deleted successfully"
	msgServiceTypeInUseTemplate = "Cannot delete service type. It is currently being used by %d case(s)."
)

// serviceTypeService implements the ServiceTypeService interface
type serviceTypeService struct {
	repos  *store.Repositories
	logger logger.Logger
	now    func() time.Time
}

// NewServiceTypeService creates a new instance of ServiceTypeService
func NewServiceTypeService(repos *store.Repositories, logger logger.Logger) (servicetypes.ServiceTypeService, error) {
	if repos == nil {
		return nil, fmt.Errorf("repositories are required")
	}
	return &serviceTypeService{repos: repos, logger: logger, now: time.Now}, nil
}

func requireAdmin(actor *users.Actor) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}
	if !actor.Role.IsAdmin() {
		return apperrors.Forbidden(MsgServiceTypeAdminOnly)
	}
	return nil
}

func (s *serviceTypeService) List(ctx context.Context) ([]*servicetypes.ServiceType, error) {
	list, err := s.repos.ServiceTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list service types: %w", err)
	}
	return list, nil
}

func (s *serviceTypeService) GetByID(ctx context.Context, id string) (*servicetypes.ServiceType, error) {
	return s.repos.ServiceTypes.GetByID(ctx, id)
}

func (s *serviceTypeService) Create(ctx context.Context, actor *users.Actor, input servicetypes.ServiceTypeInput) (*servicetypes.ServiceType, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	input = input.Normalize()
	if input.Title == "" {
		return nil, apperrors.Invalid(MsgTitleRequired)
	}

	now := s.now().UTC()
	st := &servicetypes.ServiceType{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repos.ServiceTypes.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *serviceTypeService) Update(ctx context.Context, actor *users.Actor, id string, input servicetypes.ServiceTypeInput) (*servicetypes.ServiceType, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	input = input.Normalize()
	if input.Title == "" {
		return nil, apperrors.Invalid(MsgTitleRequired)
	}

	st, err := s.repos.ServiceTypes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	st.Title = input.Title
	st.Description = input.Description
	st.UpdatedAt = s.now().UTC()
	if err := s.repos.ServiceTypes.UpdateByID(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// DeleteByID removes a service type that no case references.
func (s *serviceTypeService) DeleteByID(ctx context.Context, actor *users.Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.repos.ServiceTypes.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.repos.Cases.Count(ctx, cases.CaseCountFilter{ServiceTypeID: id})
	if err != nil {
		return fmt.Errorf("failed to count cases for service type: %w", err)
	}
	if inUse > 0 {
		return apperrors.Invalid(fmt.Sprintf(msgServiceTypeInUseTemplate, inUse))
	}

	return s.repos.ServiceTypes.DeleteByID(ctx, id)
}

package app

import (
	"context"
	"fmt"

	"github.com/Khaledaun/LVJAPP/internal/domain/partnerroles"
	"github.com/Khaledaun/LVJAPP/internal/domain/store"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"
)

type partnerRoleService struct {
	repos  *store.Repositories
	logger logger.Logger
}

// NewPartnerRoleService creates a new instance of PartnerRoleService
func NewPartnerRoleService(repos *store.Repositories, logger logger.Logger) (partnerroles.PartnerRoleService, error) {
	if repos == nil {
		return nil, fmt.Errorf("repositories are required")
	}
	return &partnerRoleService{repos: repos, logger: logger}, nil
}

// List is limited to staff and admins.
func (s *partnerRoleService) List(ctx context.Context, actor *users.Actor) ([]*partnerroles.PartnerRole, error) {
	if actor == nil || !actor.Role.CanManageCases() {
		return nil, apperrors.Forbidden(MsgNotAuthorized)
	}

	roles, err := s.repos.PartnerRoles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list partner roles: %w", err)
	}
	return roles, nil
}

package app

import (
	"fmt"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/dashboard"
	"github.com/Khaledaun/LVJAPP/internal/domain/notifications"
	"github.com/Khaledaun/LVJAPP/internal/domain/partnerroles"
	"github.com/Khaledaun/LVJAPP/internal/domain/servicetypes"
	"github.com/Khaledaun/LVJAPP/internal/domain/store"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"
)

// Services bundles every application service used by the HTTP layer.
type Services struct {
	Cases         cases.CaseService
	ServiceTypes  servicetypes.ServiceTypeService
	PartnerRoles  partnerroles.PartnerRoleService
	Auth          users.AuthService
	Dashboard     dashboard.DashboardService
	Notifications notifications.NotificationService
}

// NewServices wires the application services to a storage backend and a notification transport
func NewServices(repos *store.Repositories, notifier notifications.Notifier, cfg *config.RestConfig, logger logger.Logger) (*Services, error) {
	notificationService, err := NewNotificationService(notifier, cfg.Notifications, cfg.AppURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	caseService, err := NewCaseService(repos, notificationService, cfg.Features.StatusNotificationsEnabled(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create case service: %w", err)
	}

	serviceTypeService, err := NewServiceTypeService(repos, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create service type service: %w", err)
	}

	partnerRoleService, err := NewPartnerRoleService(repos, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create partner role service: %w", err)
	}

	authService, err := NewAuthService(repos, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	dashboardService, err := NewDashboardService(repos, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	return &Services{
		Cases:         caseService,
		ServiceTypes:  serviceTypeService,
		PartnerRoles:  partnerRoleService,
		Auth:          authService,
		Dashboard:     dashboardService,
		Notifications: notificationService,
	}, nil
}

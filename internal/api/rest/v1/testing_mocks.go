//go:build unit
// +build unit

package v1

import (
	"context"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/dashboard"
	"github.com/Khaledaun/LVJAPP/internal/domain/partnerroles"
	"github.com/Khaledaun/LVJAPP/internal/domain/servicetypes"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockCaseService is a mock implementation of CaseService
type MockCaseService struct {
	mock.Mock
}

func (m *MockCaseService) List(ctx context.Context, actor *users.Actor) ([]*cases.Case, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cases.Case), args.Error(1)
}

func (m *MockCaseService) GetByID(ctx context.Context, actor *users.Actor, caseID string) (*cases.CaseDetail, error) {
	args := m.Called(ctx, actor, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cases.CaseDetail), args.Error(1)
}

func (m *MockCaseService) Create(ctx context.Context, actor *users.Actor, input cases.CreateCaseInput) (*cases.Case, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cases.Case), args.Error(1)
}

func (m *MockCaseService) UpdateStatus(ctx context.Context, actor *users.Actor, caseID string, status cases.OverallStatus) (*cases.StatusUpdateResult, error) {
	args := m.Called(ctx, actor, caseID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cases.StatusUpdateResult), args.Error(1)
}

func (m *MockCaseService) History(ctx context.Context, actor *users.Actor, caseID string) ([]*cases.StatusChange, error) {
	args := m.Called(ctx, actor, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cases.StatusChange), args.Error(1)
}

// MockServiceTypeService is a mock implementation of ServiceTypeService
type MockServiceTypeService struct {
	mock.Mock
}

func (m *MockServiceTypeService) List(ctx context.Context) ([]*servicetypes.ServiceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*servicetypes.ServiceType), args.Error(1)
}

func (m *MockServiceTypeService) GetByID(ctx context.Context, id string) (*servicetypes.ServiceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicetypes.ServiceType), args.Error(1)
}

func (m *MockServiceTypeService) Create(ctx context.Context, actor *users.Actor, input servicetypes.ServiceTypeInput) (*servicetypes.ServiceType, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicetypes.ServiceType), args.Error(1)
}

func (m *MockServiceTypeService) Update(ctx context.Context, actor *users.Actor, id string, input servicetypes.ServiceTypeInput) (*servicetypes.ServiceType, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicetypes.ServiceType), args.Error(1)
}

func (m *MockServiceTypeService) DeleteByID(ctx context.Context, actor *users.Actor, id string) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

// MockPartnerRoleService is a mock implementation of PartnerRoleService
type MockPartnerRoleService struct {
	mock.Mock
}

func (m *MockPartnerRoleService) List(ctx context.Context, actor *users.Actor) ([]*partnerroles.PartnerRole, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partnerroles.PartnerRole), args.Error(1)
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Overview(ctx context.Context, actor *users.Actor) (*dashboard.Overview, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Overview), args.Error(1)
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*users.Actor, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Actor), args.Error(1)
}

func (m *MockAuthService) IssueSession(ctx context.Context, email string, ttl time.Duration) (*users.Session, error) {
	args := m.Called(ctx, email, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

func (m *MockAuthService) RevokeSession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

package servicetypes

import (
	"context"

	"github.com/Khaledaun/LVJAPP/internal/domain/users"
)

// ServiceTypeService defines the catalog operations exposed over HTTP.
type ServiceTypeService interface {
	// List returns every service type ordered by title. It requires no actor.
	List(ctx context.Context) ([]*ServiceType, error)

	// GetByID returns one service type or a not found error.
	GetByID(ctx context.Context, id string) (*ServiceType, error)

	// Create, Update and DeleteByID are restricted to administrators.
	Create(ctx context.Context, actor *users.Actor, input ServiceTypeInput) (*ServiceType, error)
	Update(ctx context.Context, actor *users.Actor, id string, input ServiceTypeInput) (*ServiceType, error)
	DeleteByID(ctx context.Context, actor *users.Actor, id string) error
}

// ServiceTypeRepository defines the interface for ServiceType persistence.
// Create and UpdateByID return a conflict error when the title is taken.
type ServiceTypeRepository interface {
	Create(ctx context.Context, serviceType *ServiceType) error
	List(ctx context.Context) ([]*ServiceType, error)
	GetByID(ctx context.Context, id string) (*ServiceType, error)
	UpdateByID(ctx context.Context, serviceType *ServiceType) error
	DeleteByID(ctx context.Context, id string) error
}

package partnerroles

import (
	"context"

	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/validators"
)

// PartnerRole is a role an external partner (translator, courier, notary) can hold on a case.
type PartnerRole struct {
	ID          string  `validate:"required"`
	Name        string  `validate:"required,min=1,max=120"`
	Description *string `validate:"omitempty,max=1000"`
}

// Validate for validating PartnerRole struct
func (p *PartnerRole) Validate() error {
	return validators.Struct(p, nil)
}

// PartnerRoleService lists partner roles for staff.
type PartnerRoleService interface {
	List(ctx context.Context, actor *users.Actor) ([]*PartnerRole, error)
}

// PartnerRoleRepository defines the interface for PartnerRole persistence.
type PartnerRoleRepository interface {
	Create(ctx context.Context, role *PartnerRole) error
	List(ctx context.Context) ([]*PartnerRole, error)
}

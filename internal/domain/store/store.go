// Package store groups the repositories of every aggregate so the database and
// in-memory backends can be swapped as a unit.
package store

import (
	"github.com/Khaledaun/LVJAPP/internal/domain/billing"
	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/partnerroles"
	"github.com/Khaledaun/LVJAPP/internal/domain/servicetypes"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
)

// Repositories is one complete storage backend.
type Repositories struct {
	Cases         cases.CaseRepository
	StatusChanges cases.StatusChangeRepository
	ServiceTypes  servicetypes.ServiceTypeRepository
	Users         users.UserRepository
	Sessions      users.SessionRepository
	PartnerRoles  partnerroles.PartnerRoleRepository
	Payments      billing.PaymentRepository
	Documents     billing.DocumentRepository

	// Mode is recorded on audit entries: cases.ModeDatabase or cases.ModeMock.
	Mode string
}

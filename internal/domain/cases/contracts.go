package cases

import (
	"context"

	"github.com/Khaledaun/LVJAPP/internal/domain/users"
)

// CaseService defines the case operations exposed over HTTP.
type CaseService interface {
	// List returns the cases visible to actor, newest first.
	List(ctx context.Context, actor *users.Actor) ([]*Case, error)

	// GetByID returns a case with its documents and payments if actor may view it.
	GetByID(ctx context.Context, actor *users.Actor, caseID string) (*CaseDetail, error)

	// Create opens a new case managed by actor and sends the intake notification.
	Create(ctx context.Context, actor *users.Actor, input CreateCaseInput) (*Case, error)

	// UpdateStatus moves a case to status, records the change and notifies best-effort.
	UpdateStatus(ctx context.Context, actor *users.Actor, caseID string, status OverallStatus) (*StatusUpdateResult, error)

	// History returns the status changes of a case, oldest first.
	History(ctx context.Context, actor *users.Actor, caseID string) ([]*StatusChange, error)
}

// CaseRepository defines the interface for Case persistence.
// Create returns a conflict error when the case number is taken.
type CaseRepository interface {
	Create(ctx context.Context, c *Case) error
	List(ctx context.Context, query *CaseQuery) ([]*Case, error)
	GetByID(ctx context.Context, caseID string) (*Case, error)
	UpdateStatus(ctx context.Context, c *Case) error
	Count(ctx context.Context, filter CaseCountFilter) (int64, error)
}

// StatusChangeRepository stores the status audit trail.
type StatusChangeRepository interface {
	Create(ctx context.Context, change *StatusChange) error
	ListByCase(ctx context.Context, caseID string) ([]*StatusChange, error)
}

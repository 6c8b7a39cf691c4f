package app

import (
	"context"
	"fmt"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/dashboard"
	"github.com/Khaledaun/LVJAPP/internal/domain/store"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

var (
	closedStatuses  = []cases.OverallStatus{cases.StatusApproved, cases.StatusDenied}
	pendingStatuses = []cases.OverallStatus{cases.StatusDocumentsPending, cases.StatusInReview, cases.StatusSubmitted}
)

type dashboardService struct {
	repos  *store.Repositories
	logger logger.Logger
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(repos *store.Repositories, logger logger.Logger) (dashboard.DashboardService, error) {
	if repos == nil {
		return nil, fmt.Errorf("repositories are required")
	}
	return &dashboardService{repos: repos, logger: logger}, nil
}

// Overview computes the role's counters concurrently.
func (s *dashboardService) Overview(ctx context.Context, actor *users.Actor) (*dashboard.Overview, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	var m dashboard.Metrics
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, filter cases.CaseCountFilter) {
		g.Go(func() error {
			n, err := s.repos.Cases.Count(gctx, filter)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	switch {
	case actor.Role.IsAdmin():
		g.Go(func() error {
			n, err := s.repos.Users.Count(gctx)
			if err != nil {
				return err
			}
			m.TotalUsers = n
			return nil
		})
		count(&m.TotalCases, cases.CaseCountFilter{})
		count(&m.ActiveCases, cases.CaseCountFilter{ExcludeStatuses: closedStatuses})
		count(&m.PendingCases, cases.CaseCountFilter{Statuses: pendingStatuses})

	case actor.Role.IsStaff():
		count(&m.TotalCases, cases.CaseCountFilter{ParticipantID: actor.ID})
		count(&m.ActiveCases, cases.CaseCountFilter{ParticipantID: actor.ID, ExcludeStatuses: closedStatuses})
		count(&m.CompletedCases, cases.CaseCountFilter{ParticipantID: actor.ID, Statuses: closedStatuses})

	case actor.Role.IsClient():
		count(&m.TotalCases, cases.CaseCountFilter{ClientID: actor.ID})
		count(&m.ActiveCases, cases.CaseCountFilter{ClientID: actor.ID, ExcludeStatuses: closedStatuses})
		count(&m.CompletedCases, cases.CaseCountFilter{ClientID: actor.ID, Statuses: closedStatuses})
		g.Go(func() error {
			q := cases.NewCaseQuery()
			q.ClientID = actor.ID
			q.Limit = 1
			latest, err := s.repos.Cases.List(gctx, q)
			if err != nil {
				return err
			}
			if len(latest) > 0 {
				m.CurrentCase = latest[0]
			}
			return nil
		})

	default:
		return nil, apperrors.Forbidden(MsgNotAuthorized)
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute dashboard metrics: %w", err)
	}

	return &dashboard.Overview{
		Role:          actor.Role.Normalize(),
		DashboardPath: actor.Role.DashboardPath(),
		Metrics:       m,
	}, nil
}

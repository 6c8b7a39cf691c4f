package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/notifications"
	"github.com/Khaledaun/LVJAPP/internal/domain/store"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"github.com/google/uuid"
)

// Public messages of the case operations.
const (
	MsgNotAuthorized         = "Not authorized"
	MsgNotAuthorizedStatus   = "Not authorized to update case status"
	MsgCaseFieldsRequired    = "Title, applicant name, and email are required"
	MsgServiceTypeNotFound   = "Service type not found"
	MsgCaseIDRequired        = "Case ID is required"
	MsgCaseNotFoundOrDenied  = "Case not found or access denied"
	msgInvalidStatusTemplate = "Invalid status. Valid statuses: %s"
)

// caseService implements the CaseService interface
type caseService struct {
	repos               *store.Repositories
	notifier            notifications.NotificationService
	statusNotifications bool
	logger              logger.Logger
	now                 func() time.Time
}

// NewCaseService creates a new instance of CaseService.
// statusNotifications mirrors ENABLE_STATUS_NOTIFICATIONS.
func NewCaseService(repos *store.Repositories, notifier notifications.NotificationService, statusNotifications bool, logger logger.Logger) (cases.CaseService, error) {
	if repos == nil || notifier == nil {
		return nil, fmt.Errorf("repositories and notification service are required")
	}
	return &caseService{
		repos:               repos,
		notifier:            notifier,
		statusNotifications: statusNotifications,
		logger:              logger,
		now:                 time.Now,
	}, nil
}

// List returns the cases visible to actor: all for admins, participated cases for staff, owned cases for clients.
func (s *caseService) List(ctx context.Context, actor *users.Actor) ([]*cases.Case, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	query := cases.NewCaseQuery()
	switch {
	case actor.Role.IsAdmin():
	case actor.Role.IsStaff():
		query.ParticipantID = actor.ID
	case actor.Role.IsClient():
		query.ClientID = actor.ID
	default:
		return nil, apperrors.Forbidden(MsgNotAuthorized)
	}

	list, err := s.repos.Cases.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return list, nil
}

func (s *caseService) visibleCase(ctx context.Context, actor *users.Actor, caseID string) (*cases.Case, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if strings.TrimSpace(caseID) == "" {
		return nil, apperrors.Invalid(MsgCaseIDRequired)
	}

	c, err := s.repos.Cases.GetByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(MsgCaseNotFoundOrDenied)
		}
		return nil, err
	}
	if !c.CanBeViewedBy(actor) {
		return nil, apperrors.NotFound(MsgCaseNotFoundOrDenied)
	}
	return c, nil
}

// GetByID returns a case with its documents and payments.
// Cases the actor may not view are reported as not found.
func (s *caseService) GetByID(ctx context.Context, actor *users.Actor, caseID string) (*cases.CaseDetail, error) {
	c, err := s.visibleCase(ctx, actor, caseID)
	if err != nil {
		return nil, err
	}

	documents, err := s.repos.Documents.ListByCase(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	payments, err := s.repos.Payments.ListByCase(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &cases.CaseDetail{Case: c, Documents: documents, Payments: payments}, nil
}

// Create opens a case managed by actor and sends the intake notification.
func (s *caseService) Create(ctx context.Context, actor *users.Actor, input cases.CreateCaseInput) (*cases.Case, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if !actor.Role.CanManageCases() {
		return nil, apperrors.Forbidden(MsgNotAuthorized)
	}

	title := strings.TrimSpace(input.Title)
	applicantName := strings.TrimSpace(input.ApplicantName)
	applicantEmail := strings.TrimSpace(input.ApplicantEmail)
	if title == "" || applicantName == "" || applicantEmail == "" {
		return nil, apperrors.Invalid(MsgCaseFieldsRequired)
	}

	var serviceTypeID *string
	serviceTypeTitle, serviceTypeDescription := "", ""
	if input.ServiceTypeID != nil && strings.TrimSpace(*input.ServiceTypeID) != "" {
		st, err := s.repos.ServiceTypes.GetByID(ctx, strings.TrimSpace(*input.ServiceTypeID))
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.Invalid(MsgServiceTypeNotFound)
			}
			return nil, fmt.Errorf("failed to look up service type: %w", err)
		}
		serviceTypeID = &st.ID
		serviceTypeTitle = st.Title
		if st.Description != nil {
			serviceTypeDescription = *st.Description
		}
	}

	now := s.now().UTC()
	managerID := actor.ID
	c := &cases.Case{
		ID:                   uuid.NewString(),
		CaseNumber:           cases.NewCaseNumber(now),
		Title:                title,
		ApplicantName:        applicantName,
		ApplicantEmail:       applicantEmail,
		CaseManagerID:        &managerID,
		ServiceTypeID:        serviceTypeID,
		OverallStatus:        cases.StatusNew,
		Stage:                cases.DefaultStage,
		UrgencyLevel:         cases.DefaultUrgency,
		CompletionPercentage: cases.DefaultCompletionPercentage,
		TotalFee:             0,
		Currency:             cases.DefaultCurrency,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repos.Cases.Create(ctx, c); err != nil {
		return nil, err
	}

	created, err := s.repos.Cases.GetByID(ctx, c.ID)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("Created case %s but could not reload it: %v", c.ID, err))
		created = c
	}

	s.notifier.NotifyIntake(ctx, notifications.IntakeNotice{
		CaseID:                 created.ID,
		Title:                  created.Title,
		ApplicantName:          created.ApplicantName,
		ApplicantEmail:         created.ApplicantEmail,
		ServiceTypeTitle:       serviceTypeTitle,
		ServiceTypeDescription: serviceTypeDescription,
		CreatedAt:              created.CreatedAt,
	})

	return created, nil
}

// UpdateStatus moves a case to status. The checks run in a fixed order so the
// first failing one decides the response.
func (s *caseService) UpdateStatus(ctx context.Context, actor *users.Actor, caseID string, status cases.OverallStatus) (*cases.StatusUpdateResult, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if strings.TrimSpace(caseID) == "" {
		return nil, apperrors.Invalid(MsgCaseIDRequired)
	}
	if !status.IsValid() {
		return nil, apperrors.Invalid(fmt.Sprintf(msgInvalidStatusTemplate, cases.ValidStatusList()))
	}
	if !actor.Role.CanManageCases() {
		return nil, apperrors.Forbidden(MsgNotAuthorizedStatus)
	}

	c, err := s.repos.Cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if !c.CanBeManagedBy(actor) {
		return nil, apperrors.NotFound(MsgCaseNotFoundOrDenied)
	}

	if c.OverallStatus == status {
		return &cases.StatusUpdateResult{
			Case:    c,
			Message: cases.StatusUnchangedMessage,
		}, nil
	}

	previous := c.OverallStatus
	now := s.now().UTC()
	c.OverallStatus = status
	c.UpdatedAt = now

	if err := s.repos.Cases.UpdateStatus(ctx, c); err != nil {
		return nil, err
	}

	s.audit(ctx, actor, c, previous, now)

	notified := false
	if s.statusNotifications {
		serviceTypeTitle := ""
		if c.ServiceType != nil {
			serviceTypeTitle = c.ServiceType.Title
		}
		notified = s.notifier.NotifyStatusChange(ctx, notifications.StatusChangeNotice{
			CaseID:           c.ID,
			Title:            c.Title,
			ApplicantName:    c.ApplicantName,
			ApplicantEmail:   c.ApplicantEmail,
			ServiceTypeTitle: serviceTypeTitle,
			PreviousStatus:   string(previous),
			NewStatus:        string(status),
			ChangedBy:        actor.Label(),
			ChangedAt:        now,
		})
	}

	return &cases.StatusUpdateResult{
		Case:             c,
		NotificationSent: notified,
		PreviousStatus:   previous,
		NewStatus:        status,
	}, nil
}

// audit records the transition. The status write has already happened, so a
// failure here is logged and does not fail the request.
func (s *caseService) audit(ctx context.Context, actor *users.Actor, c *cases.Case, previous cases.OverallStatus, at time.Time) {
	flag := "DISABLED"
	if s.statusNotifications {
		flag = "ENABLED"
	}

	s.logger.Info(fmt.Sprintf("AUDIT case status change case_id=%s previous_status=%s new_status=%s changed_by=%q actor_id=%s mode=%s notifications=%s at=%s",
		c.ID, previous, c.OverallStatus, actor.Label(), actor.ID, s.repos.Mode, flag, at.Format(time.RFC3339)))

	change := &cases.StatusChange{
		ID:                   uuid.NewString(),
		CaseID:               c.ID,
		ChangedBy:            actor.ID,
		ChangedByLabel:       actor.Label(),
		PreviousStatus:       previous,
		NewStatus:            c.OverallStatus,
		NotificationsEnabled: s.statusNotifications,
		Mode:                 s.repos.Mode,
		CreatedAt:            at,
	}
	if err := s.repos.StatusChanges.Create(ctx, change); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to record status change for case %s: %v", c.ID, err))
	}
}

// History returns the recorded status changes of a case the actor may view.
func (s *caseService) History(ctx context.Context, actor *users.Actor, caseID string) ([]*cases.StatusChange, error) {
	c, err := s.visibleCase(ctx, actor, caseID)
	if err != nil {
		return nil, err
	}

	history, err := s.repos.StatusChanges.ListByCase(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list status changes: %w", err)
	}
	return history, nil
}

package app

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/notifications"
	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"
)

const notSpecified = "Not specified"

var intakeTemplate = template.Must(template.New("intake").Parse(`
<h2>New Case Intake Notification</h2>
<p>A new case has been created and requires attention from the legal team.</p>
<h3>Case Details:</h3>
<p>
  <strong>Case Title:</strong> {{.Title}}<br>
  <strong>Applicant Name:</strong> {{.ApplicantName}}<br>
  <strong>Applicant Email:</strong> {{.ApplicantEmail}}<br>
  <strong>Service Type:</strong> {{.ServiceType}}<br>
  {{- if .ServiceTypeDescription}}
  <em>{{.ServiceTypeDescription}}</em><br>
  {{- end}}
</p>
<p>
  <strong>Case ID:</strong> {{.CaseID}}<br>
  <strong>Created:</strong> {{.When}}
</p>
<p>Please review this case and assign appropriate legal resources as needed.</p>
<p><a href="{{.Link}}">View Case</a></p>
`))

var statusChangeTemplate = template.Must(template.New("status").Parse(`
<h2>Case Status Change Notification</h2>
<p>The status of a case has been updated.</p>
<h3>Case Details:</h3>
<p>
  <strong>Case Title:</strong> {{.Title}}<br>
  <strong>Applicant Name:</strong> {{.ApplicantName}}<br>
  <strong>Applicant Email:</strong> {{.ApplicantEmail}}<br>
  <strong>Service Type:</strong> {{.ServiceType}}<br>
</p>
<h3>Status Change:</h3>
<p>
  <strong>Previous Status:</strong> {{.PreviousStatus}}<br>
  <strong>New Status:</strong> {{.NewStatus}}<br>
  <strong>Changed By:</strong> {{.ChangedBy}}<br>
  <strong>Changed At:</strong> {{.When}}
</p>
<p><strong>Case ID:</strong> {{.CaseID}}</p>
<p><a href="{{.Link}}">View Case</a></p>
`))

type noticeView struct {
	CaseID                 string
	Title                  string
	ApplicantName          string
	ApplicantEmail         string
	ServiceType            string
	ServiceTypeDescription string
	PreviousStatus         string
	NewStatus              string
	ChangedBy              string
	When                   string
	Link                   string
}

// notificationService renders notices and delivers them through a Notifier
type notificationService struct {
	notifier notifications.Notifier
	settings config.NotificationSettings
	appURL   string
	logger   logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(notifier notifications.Notifier, settings config.NotificationSettings, appURL string, logger logger.Logger) (notifications.NotificationService, error) {
	if notifier == nil {
		return nil, fmt.Errorf("notifier is required")
	}
	return &notificationService{
		notifier: notifier,
		settings: settings,
		appURL:   strings.TrimRight(appURL, "/"),
		logger:   logger,
	}, nil
}

func (s *notificationService) caseLink(caseID string) string {
	return s.appURL + "/cases/" + caseID
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05 MST")
}

func serviceTypeOrDefault(title string) string {
	if title == "" {
		return notSpecified
	}
	return title
}

// NotifyIntake tells the legal team about a new case. Failures are logged and reported as false.
func (s *notificationService) NotifyIntake(ctx context.Context, notice notifications.IntakeNotice) bool {
	view := noticeView{
		CaseID:         notice.CaseID,
		Title:          notice.Title,
		ApplicantName:  notice.ApplicantName,
		ApplicantEmail: notice.ApplicantEmail,
		ServiceType:    serviceTypeOrDefault(notice.ServiceTypeTitle),
		When:           formatTime(notice.CreatedAt),
		Link:           s.caseLink(notice.CaseID),
	}
	serviceType := view.ServiceType
	if notice.ServiceTypeTitle != "" && notice.ServiceTypeDescription != "" {
		view.ServiceTypeDescription = notice.ServiceTypeDescription
		serviceType += " (" + notice.ServiceTypeDescription + ")"
	}

	var html bytes.Buffer
	if err := intakeTemplate.Execute(&html, view); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to render intake notification for case %s: %v", notice.CaseID, err))
		return false
	}

	text := fmt.Sprintf("Case Details:\n- Case Title: %s\n- Applicant: %s (%s)\n- Service Type: %s\n- Case ID: %s\n- Created: %s",
		view.Title, view.ApplicantName, view.ApplicantEmail, serviceType, view.CaseID, view.When)

	return s.deliver(ctx, notifications.Message{
		To:      s.settings.IntakeRecipients,
		Subject: "New Case Intake: " + notice.Title,
		HTML:    html.String(),
		Kind:    notifications.KindIntake,
		Text:    text,
	}, notice.CaseID)
}

// NotifyStatusChange tells admins about a status transition. Failures are logged and reported as false.
func (s *notificationService) NotifyStatusChange(ctx context.Context, notice notifications.StatusChangeNotice) bool {
	view := noticeView{
		CaseID:         notice.CaseID,
		Title:          notice.Title,
		ApplicantName:  notice.ApplicantName,
		ApplicantEmail: notice.ApplicantEmail,
		ServiceType:    serviceTypeOrDefault(notice.ServiceTypeTitle),
		PreviousStatus: notice.PreviousStatus,
		NewStatus:      notice.NewStatus,
		ChangedBy:      notice.ChangedBy,
		When:           formatTime(notice.ChangedAt),
		Link:           s.caseLink(notice.CaseID),
	}

	var html bytes.Buffer
	if err := statusChangeTemplate.Execute(&html, view); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to render status change notification for case %s: %v", notice.CaseID, err))
		return false
	}

	text := fmt.Sprintf("Case: %s\nApplicant: %s (%s)\nService Type: %s\nPrevious Status: %s\nNew Status: %s\nChanged By: %s\nChanged At: %s\nCase ID: %s",
		view.Title, view.ApplicantName, view.ApplicantEmail, view.ServiceType,
		view.PreviousStatus, view.NewStatus, view.ChangedBy, view.When, view.CaseID)

	return s.deliver(ctx, notifications.Message{
		To:      s.settings.StatusRecipients,
		Subject: fmt.Sprintf("Case Status Change: %s → %s", notice.Title, notice.NewStatus),
		HTML:    html.String(),
		Kind:    notifications.KindStatusChange,
		Text:    text,
	}, notice.CaseID)
}

func (s *notificationService) deliver(ctx context.Context, msg notifications.Message, caseID string) bool {
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to send %s notification for case %s: %v", msg.Kind, caseID, err))
		return false
	}
	return true
}

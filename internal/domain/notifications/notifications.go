package notifications

import (
	"context"
	"time"
)

// Message kinds.
const (
	KindIntake       = "intake"
	KindStatusChange = "status_change"
)

// Message is the transport level payload: recipients, subject and an HTML body.
// Kind and Text are not sent; Text is a plain-text rendering for log output.
type Message struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Kind    string   `json:"-"`
	Text    string   `json:"-"`
}

// Notifier delivers a message through one transport.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// IntakeNotice describes a newly opened case.
type IntakeNotice struct {
	CaseID           string
	Title            string
	ApplicantName    string
	ApplicantEmail   string
	ServiceTypeTitle string
	// ServiceTypeDescription is rendered under the title when set.
	ServiceTypeDescription string
	CreatedAt              time.Time
}

// StatusChangeNotice describes one status transition.
type StatusChangeNotice struct {
	CaseID           string
	Title            string
	ApplicantName    string
	ApplicantEmail   string
	ServiceTypeTitle string
	PreviousStatus   string
	NewStatus        string
	ChangedBy        string
	ChangedAt        time.Time
}

// NotificationService renders notices and hands them to a Notifier.
// Both methods are best-effort: failures are logged and reported as false.
type NotificationService interface {
	NotifyIntake(ctx context.Context, notice IntakeNotice) bool
	NotifyStatusChange(ctx context.Context, notice StatusChangeNotice) bool
}

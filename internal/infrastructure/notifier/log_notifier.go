package notifier

import (
	"context"
	"strings"

	"github.com/Khaledaun/LVJAPP/internal/domain/notifications"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"
)

// Log markers written by LogNotifier.
const (
	MockNotificationMarker         = "MOCK NOTIFICATION SENT"
	StatusChangeNotificationMarker = "STATUS CHANGE NOTIFICATION SENT"
)

// LogNotifier writes notifications to the log instead of delivering them.
type LogNotifier struct {
	logger logger.Logger
}

// NewLogNotifier creates a log-only notifier
func NewLogNotifier(logger logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, msg notifications.Message) error {
	marker := MockNotificationMarker
	if msg.Kind == notifications.KindStatusChange {
		marker = StatusChangeNotificationMarker
	}

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString("\nTo: ")
	b.WriteString(strings.Join(msg.To, ", "))
	b.WriteString("\nSubject: ")
	b.WriteString(msg.Subject)
	if msg.Text != "" {
		b.WriteString("\n")
		b.WriteString(msg.Text)
	}

	n.logger.Info(b.String())
	return nil
}

package notifier

import (
	"fmt"
	"net/http"

	"github.com/Khaledaun/LVJAPP/internal/domain/notifications"
	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"
)

// NewNotifier builds the transport selected by settings.Transport
func NewNotifier(settings *config.NotificationSettings, logger logger.Logger) (notifications.Notifier, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid notification settings: %w", err)
	}

	switch settings.Transport {
	case config.NotificationTransportMessages:
		return NewMessagesNotifier(settings, &http.Client{Timeout: settings.Timeout}, logger), nil
	case config.NotificationTransportSendGrid:
		return NewSendGridNotifier(settings, sendGridHost, logger), nil
	case config.NotificationTransportLog:
		return NewLogNotifier(logger), nil
	default:
		return nil, fmt.Errorf("unsupported notification transport: %s", settings.Transport)
	}
}

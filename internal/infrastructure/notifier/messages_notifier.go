package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/notifications"
	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"
)

// messagesPayload is the body accepted by the messages endpoint.
type messagesPayload struct {
	Action string `json:"action"`
	notifications.Message
}

// MessagesNotifier posts notifications to the messages endpoint as JSON.
type MessagesNotifier struct {
	client   *http.Client
	url      string
	attempts uint
	delay    time.Duration
	logger   logger.Logger
}

// NewMessagesNotifier creates a notifier that POSTs to settings.MessagesURL
func NewMessagesNotifier(settings *config.NotificationSettings, client *http.Client, logger logger.Logger) *MessagesNotifier {
	return &MessagesNotifier{
		client:   client,
		url:      settings.MessagesURL,
		attempts: settings.RetryAttempts,
		delay:    settings.RetryDelay,
		logger:   logger,
	}
}

func (n *MessagesNotifier) Send(ctx context.Context, msg notifications.Message) error {
	body, err := json.Marshal(messagesPayload{Action: "notify", Message: msg})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	err = withRetry(ctx, n.attempts, n.delay, n.logger, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to post notification: %w", err)
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &statusError{transport: "messages endpoint", code: resp.StatusCode}
		}
		return nil
	})
	if err != nil {
		return err
	}

	n.logger.Info("Notification delivered to messages endpoint: ", msg.Subject)
	return nil
}

package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/notifications"
	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendGridHost     = "https://api.sendgrid.com"
	sendGridEndpoint = "/v3/mail/send"
	sendGridFromName = "LVJ Case Management"
)

// SendGridNotifier sends notifications as email through the SendGrid v3 API.
type SendGridNotifier struct {
	apiKey   string
	host     string
	from     string
	attempts uint
	delay    time.Duration
	logger   logger.Logger
}

// NewSendGridNotifier creates a notifier for the SendGrid API at host
func NewSendGridNotifier(settings *config.NotificationSettings, host string, logger logger.Logger) *SendGridNotifier {
	return &SendGridNotifier{
		apiKey:   settings.SendGridAPIKey,
		host:     host,
		from:     settings.FromAddress,
		attempts: settings.RetryAttempts,
		delay:    settings.RetryDelay,
		logger:   logger,
	}
}

func (n *SendGridNotifier) buildMail(msg notifications.Message) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(sendGridFromName, n.from))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	for _, to := range msg.To {
		p.AddTos(mail.NewEmail("", to))
	}
	m.AddPersonalizations(p)

	if msg.Text != "" {
		m.AddContent(mail.NewContent("text/plain", msg.Text))
	}
	m.AddContent(mail.NewContent("text/html", msg.HTML))
	return m
}

func (n *SendGridNotifier) Send(ctx context.Context, msg notifications.Message) error {
	body := mail.GetRequestBody(n.buildMail(msg))

	err := withRetry(ctx, n.attempts, n.delay, n.logger, func(ctx context.Context) error {
		req := sendgrid.GetRequest(n.apiKey, sendGridEndpoint, n.host)
		req.Method = "POST"
		req.Body = body

		resp, err := sendgrid.MakeRequestWithContext(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to send mail: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &statusError{transport: "sendgrid", code: resp.StatusCode}
		}
		return nil
	})
	if err != nil {
		return err
	}

	n.logger.Info("Notification delivered through sendgrid: ", msg.Subject)
	return nil
}

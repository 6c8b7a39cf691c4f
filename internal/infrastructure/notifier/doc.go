// Package notifier delivers case notifications.
//
// Three transports are available: an HTTP POST to the messages endpoint, the
// SendGrid v3 mail API, and a log-only transport used in development.
package notifier

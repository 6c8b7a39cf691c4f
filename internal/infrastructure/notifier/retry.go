package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"github.com/avast/retry-go/v4"
)

// statusError is a non-2xx reply. 4xx replies are not retried.
type statusError struct {
	transport string
	code      int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.transport, e.code)
}

func (e *statusError) permanent() bool {
	return e.code >= 400 && e.code < 500 && e.code != 429
}

func withRetry(ctx context.Context, attempts uint, delay time.Duration, log logger.Logger, send func(ctx context.Context) error) error {
	if attempts == 0 {
		attempts = 1
	}

	return retry.Do(
		func() error {
			err := send(ctx)
			var se *statusError
			if errors.As(err, &se) && se.permanent() {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn(fmt.Sprintf("notification attempt %d failed: %v", n+1, err))
		}),
	)
}

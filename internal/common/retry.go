package common

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/service"
)

// ErrMaxAttempts indicates that all retry attempts have been exhausted.
var ErrMaxAttempts = errors.New("max attempts exceeded")

// WithRetry executes an operation with a bounded attempt cap and a fixed
// delay between attempts. The document analysis polling contract requires
// exactly this shape: no backoff, no unbounded waiting.
func WithRetry(ctx context.Context, operation func() error, opts service.RetryOptions) error {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 30
	}
	if opts.Delay <= 0 {
		opts.Delay = 2 * time.Second
	}

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		var retryableErr *RetryableError
		if errors.As(err, &retryableErr) && !retryableErr.Retryable {
			return err
		}

		if attempt == opts.MaxAttempts {
			return fmt.Errorf("%w after %d attempts: %v", ErrMaxAttempts, opts.MaxAttempts, err)
		}

		slog.Debug("Operation failed, retrying",
			"attempt", attempt,
			"max_attempts", opts.MaxAttempts,
			"delay", opts.Delay,
			"error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.Delay):
		}
	}

	return ErrMaxAttempts
}

package taskqueue

import (
	"context"
	"log/slog"
	"math"
	"time"
)

const defaultMaxRetries = 3

// retry runs op up to maxRetries times with exponential backoff starting at
// 100ms. It returns the last error when every attempt fails.
func retry(ctx context.Context, maxRetries int, op string, taskID string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.DebugContext(ctx, "retrying task operation",
				slog.String("operation", op),
				slog.String("task_id", taskID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		if lastErr = fn(); lastErr == nil {
			return nil
		}
	}

	slog.ErrorContext(ctx, "all retries exhausted for task operation",
		slog.String("operation", op),
		slog.String("task_id", taskID),
		slog.Int("max_retries", maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return lastErr
}

package sweep

import (
	"context"
	"log/slog"
	"time"
)

// Runner drives sweeps from a ticker and from Trigger calls on a single
// goroutine, so at most one sweep runs at a time.
type Runner struct {
	svc      *Service
	interval time.Duration
	notifyCh chan struct{}
}

func NewRunner(svc *Service, interval time.Duration) *Runner {
	return &Runner{
		svc:      svc,
		interval: interval,
		notifyCh: make(chan struct{}, 1),
	}
}

// Trigger requests a sweep soon. It never blocks; a request made while one is
// already pending is merged into it.
func (r *Runner) Trigger() {
	select {
	case r.notifyCh <- struct{}{}:
	default:
	}
}

// Start runs until ctx is cancelled. The first sweep runs immediately.
func (r *Runner) Start(ctx context.Context) {
	slog.InfoContext(ctx, "sweep runner started",
		slog.Duration("interval", r.interval),
	)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.run(ctx, TriggerStartup)

	for {
		select {
		case <-ctx.Done():
			slog.Info("sweep runner stopped")
			return
		case <-ticker.C:
			r.run(ctx, TriggerTimer)
		case <-r.notifyCh:
			r.run(ctx, TriggerEvent)
		}
	}
}

func (r *Runner) run(ctx context.Context, trigger string) {
	if ctx.Err() != nil {
		return
	}
	if _, err := r.svc.Run(ctx, trigger); err != nil {
		slog.ErrorContext(ctx, "sweep failed",
			slog.String("trigger", trigger),
			slog.String("error", err.Error()),
		)
	}
}

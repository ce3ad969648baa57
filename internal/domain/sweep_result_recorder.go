package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=sweep_result_recorder.go -destination=sweep_result_recorder_mock.go -package=domain

// SweepResultRecord summarizes one maintenance sweep for analytics.
type SweepResultRecord struct {
	RunID            string
	StartedAt        time.Time
	Trigger          string
	ArchivedCount    int
	ToppedUpCount    int
	FailedCount      int
	ReconciledCount  int
	ReconcileSkipped bool
	Duration         time.Duration
}

type SweepResultRecorder interface {
	RecordSweep(ctx context.Context, record SweepResultRecord) error
	Close() error
}

package sweeprecorder

import (
	"context"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.SweepResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordSweep(_ context.Context, _ domain.SweepResultRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}

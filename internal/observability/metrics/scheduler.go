package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	schedulerMeterName = "scheduler.service"
)

var phaseDurationBuckets = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}

type SchedulerMetrics struct {
	notificationsGenerated metric.Int64Counter
	duplicateSlots         metric.Int64Counter
	horizonIterations      metric.Int64Histogram
	sweepPhaseDuration     metric.Float64Histogram
	sweepReminderFailures  metric.Int64Counter
	reconcileRegistrations metric.Int64Counter
	reconcileSkipped       metric.Int64Counter
	reconcileCancelErrors  metric.Int64Counter
}

func NewSchedulerMetrics() (*SchedulerMetrics, error) {
	meter := otel.Meter(schedulerMeterName)

	notificationsGenerated, err := meter.Int64Counter(
		"scheduler_notifications_generated_total",
		metric.WithDescription("Total number of notifications inserted by horizon maintenance"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	duplicateSlots, err := meter.Int64Counter(
		"scheduler_duplicate_slots_total",
		metric.WithDescription("Total number of generated slots that already existed"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	horizonIterations, err := meter.Int64Histogram(
		"scheduler_horizon_iterations",
		metric.WithDescription("Intervals visited per horizon discovery"),
		metric.WithUnit("{interval}"),
		metric.WithExplicitBucketBoundaries(1, 2, 5, 10, 25, 50, 100, 500, 1000, 10000),
	)
	if err != nil {
		return nil, err
	}

	sweepPhaseDuration, err := meter.Float64Histogram(
		"scheduler_sweep_phase_duration_seconds",
		metric.WithDescription("Maintenance sweep phase duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(phaseDurationBuckets...),
	)
	if err != nil {
		return nil, err
	}

	sweepReminderFailures, err := meter.Int64Counter(
		"scheduler_sweep_reminder_failures_total",
		metric.WithDescription("Total number of reminders whose top-up failed during a sweep"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, err
	}

	reconcileRegistrations, err := meter.Int64Counter(
		"scheduler_reconcile_registrations_total",
		metric.WithDescription("Total number of alarms registered with the platform"),
		metric.WithUnit("{alarm}"),
	)
	if err != nil {
		return nil, err
	}

	reconcileSkipped, err := meter.Int64Counter(
		"scheduler_reconcile_skipped_total",
		metric.WithDescription("Total number of reconcile passes skipped because one was in flight"),
		metric.WithUnit("{pass}"),
	)
	if err != nil {
		return nil, err
	}

	reconcileCancelErrors, err := meter.Int64Counter(
		"scheduler_reconcile_cancel_errors_total",
		metric.WithDescription("Total number of reconcile passes where cancelling registered alarms partly failed"),
		metric.WithUnit("{pass}"),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerMetrics{
		notificationsGenerated: notificationsGenerated,
		duplicateSlots:         duplicateSlots,
		horizonIterations:      horizonIterations,
		sweepPhaseDuration:     sweepPhaseDuration,
		sweepReminderFailures:  sweepReminderFailures,
		reconcileRegistrations: reconcileRegistrations,
		reconcileSkipped:       reconcileSkipped,
		reconcileCancelErrors:  reconcileCancelErrors,
	}, nil
}

func (m *SchedulerMetrics) RecordNotificationsGenerated(ctx context.Context, mode string, count int) {
	m.notificationsGenerated.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("mode", mode),
	))
}

func (m *SchedulerMetrics) RecordDuplicateSlots(ctx context.Context, count int) {
	m.duplicateSlots.Add(ctx, int64(count))
}

func (m *SchedulerMetrics) RecordHorizonIterations(ctx context.Context, mode string, iterations int) {
	m.horizonIterations.Record(ctx, int64(iterations), metric.WithAttributes(
		attribute.String("mode", mode),
	))
}

func (m *SchedulerMetrics) RecordSweepPhaseDuration(ctx context.Context, phase string, duration time.Duration) {
	m.sweepPhaseDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("phase", phase),
	))
}

func (m *SchedulerMetrics) RecordSweepReminderFailure(ctx context.Context) {
	m.sweepReminderFailures.Add(ctx, 1)
}

func (m *SchedulerMetrics) RecordReconcileRegistrations(ctx context.Context, outcome string, count int) {
	m.reconcileRegistrations.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *SchedulerMetrics) RecordReconcileSkipped(ctx context.Context) {
	m.reconcileSkipped.Add(ctx, 1)
}

func (m *SchedulerMetrics) RecordReconcileCancelFailure(ctx context.Context) {
	m.reconcileCancelErrors.Add(ctx, 1)
}

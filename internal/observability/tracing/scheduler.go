package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const schedulerTracerName = "github.com/KasumiMercury/primind-notification-scheduler/internal/service"

func SchedulerTracer() trace.Tracer {
	return otel.Tracer(schedulerTracerName)
}

// StartHorizonSpan covers one ensure or recalc call; mode is "ensure" or "recalc".
func StartHorizonSpan(ctx context.Context, mode string, reminderID int64, desiredCount int, bias float64) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "horizon."+mode,
		trace.WithAttributes(
			attribute.Int64("reminder_id", reminderID),
			attribute.Int("horizon.desired_count", desiredCount),
			attribute.Float64("horizon.bias", bias),
		),
	)
}

func StartSweepSpan(ctx context.Context, runID, trigger string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "sweep.run",
		trace.WithAttributes(
			attribute.String("sweep.run_id", runID),
			attribute.String("sweep.trigger", trigger),
		),
	)
}

func StartSweepPhaseSpan(ctx context.Context, phase string, now time.Time) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "sweep."+phase,
		trace.WithAttributes(
			attribute.String("phase.now", now.Format(time.RFC3339)),
		),
	)
}

func StartRedisOperationSpan(ctx context.Context, operation, key string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.redis."+operation,
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", operation),
			attribute.String("db.key", key),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordHorizonResult(span trace.Span, iterations, inserted int, err error) {
	span.SetAttributes(
		attribute.Int("horizon.iterations", iterations),
		attribute.Int("horizon.inserted", inserted),
	)
	SetStatusFromError(span, err)
}

func RecordPhaseResult(span trace.Span, processed, failed int, err error) {
	span.SetAttributes(
		attribute.Int("phase.processed_count", processed),
		attribute.Int("phase.failed_count", failed),
	)
	SetStatusFromError(span, err)
}

// SetStatusFromError marks the span failed when err is non-nil.
func SetStatusFromError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

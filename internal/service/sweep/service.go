package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/observability/tracing"
)

const (
	TriggerTimer   = "timer"
	TriggerStartup = "startup"
	TriggerEvent   = "event"
	TriggerManual  = "manual"

	phaseArchive   = "archive"
	phaseTopUp     = "top_up"
	phaseReconcile = "reconcile"
)

//go:generate mockgen -source=service.go -destination=horizon_mock_test.go -package=sweep

// HorizonMaintainer tops up a reminder's future notifications.
type HorizonMaintainer interface {
	Ensure(ctx context.Context, reminderID int64, desiredCount int, bias float64) error
}

type Config struct {
	DesiredCount         int
	Bias                 float64
	PlatformHorizonLimit int
}

type Result struct {
	RunID            string
	Trigger          string
	StartedAt        time.Time
	Archived         int
	ToppedUp         int
	Failed           int
	Reconciled       int
	ReconcileSkipped bool
	Duration         time.Duration
}

type Service struct {
	reminders     domain.ReminderRepository
	notifications domain.NotificationRepository
	horizon       HorizonMaintainer
	alarms        domain.AlarmScheduler
	recorder      domain.SweepResultRecorder
	metrics       *metrics.SchedulerMetrics
	cfg           Config
	now           func() time.Time

	// reconcileMu admits one reconcile pass at a time; contenders skip.
	reconcileMu sync.Mutex
}

func NewService(
	reminders domain.ReminderRepository,
	notifications domain.NotificationRepository,
	horizon HorizonMaintainer,
	alarms domain.AlarmScheduler,
	recorder domain.SweepResultRecorder,
	schedulerMetrics *metrics.SchedulerMetrics,
	cfg Config,
) *Service {
	return &Service{
		reminders:     reminders,
		notifications: notifications,
		horizon:       horizon,
		alarms:        alarms,
		recorder:      recorder,
		metrics:       schedulerMetrics,
		cfg:           cfg,
		now:           time.Now,
	}
}

// Run executes archive, top-up and reconcile in order. A failing phase does
// not prevent the following ones from running; their errors are joined.
func (s *Service) Run(ctx context.Context, trigger string) (*Result, error) {
	result := &Result{
		RunID:     uuid.NewString(),
		Trigger:   trigger,
		StartedAt: s.now(),
	}

	ctx, span := tracing.StartSweepSpan(ctx, result.RunID, trigger)
	defer span.End()

	var errs []error
	if err := s.archiveExpired(ctx, result); err != nil {
		errs = append(errs, fmt.Errorf("archive phase: %w", err))
	}
	if err := s.topUp(ctx, result); err != nil {
		errs = append(errs, fmt.Errorf("top-up phase: %w", err))
	}
	if err := s.reconcile(ctx, result); err != nil {
		errs = append(errs, fmt.Errorf("reconcile phase: %w", err))
	}
	result.Duration = s.now().Sub(result.StartedAt)

	err := errors.Join(errs...)
	tracing.SetStatusFromError(span, err)

	slog.InfoContext(ctx, "sweep completed",
		slog.String("run_id", result.RunID),
		slog.String("trigger", trigger),
		slog.Int("archived", result.Archived),
		slog.Int("topped_up", result.ToppedUp),
		slog.Int("failed", result.Failed),
		slog.Int("reconciled", result.Reconciled),
		slog.Bool("reconcile_skipped", result.ReconcileSkipped),
		slog.Duration("duration", result.Duration),
	)

	s.record(ctx, result)
	return result, err
}

func (s *Service) archiveExpired(ctx context.Context, result *Result) error {
	now := s.now()
	ctx, span := tracing.StartSweepPhaseSpan(ctx, phaseArchive, now)
	defer span.End()
	defer s.observePhase(ctx, phaseArchive, now)

	reminders, err := s.reminders.GetActiveReminders(ctx)
	if err != nil {
		tracing.RecordPhaseResult(span, 0, 0, err)
		return fmt.Errorf("get active reminders: %w", err)
	}

	failed := 0
	for _, r := range reminders {
		if !r.HasEnded(now) {
			continue
		}
		if err := s.archive(ctx, r.ID, now); err != nil {
			failed++
			slog.ErrorContext(ctx, "failed to archive expired reminder",
				slog.Int64("reminder_id", r.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Archived++
	}
	result.Failed += failed

	tracing.RecordPhaseResult(span, result.Archived, failed, nil)
	return nil
}

func (s *Service) archive(ctx context.Context, reminderID int64, cutoff time.Time) error {
	if err := s.reminders.ArchiveReminder(ctx, reminderID); err != nil {
		return err
	}
	deleted, err := s.notifications.DeleteFutureUnrespondedNotifications(ctx, reminderID, cutoff)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "archived expired reminder",
		slog.Int64("reminder_id", reminderID),
		slog.Int64("deleted_notifications", deleted),
	)
	return nil
}

func (s *Service) topUp(ctx context.Context, result *Result) error {
	now := s.now()
	ctx, span := tracing.StartSweepPhaseSpan(ctx, phaseTopUp, now)
	defer span.End()
	defer s.observePhase(ctx, phaseTopUp, now)

	reminders, err := s.reminders.GetActiveReminders(ctx)
	if err != nil {
		tracing.RecordPhaseResult(span, 0, 0, err)
		return fmt.Errorf("get active reminders: %w", err)
	}

	failed := 0
	for _, r := range reminders {
		if r.IsArchived || r.IsMuted {
			continue
		}
		if err := s.horizon.Ensure(ctx, r.ID, s.cfg.DesiredCount, s.cfg.Bias); err != nil {
			failed++
			if s.metrics != nil {
				s.metrics.RecordSweepReminderFailure(ctx)
			}
			slog.ErrorContext(ctx, "failed to top up reminder",
				slog.Int64("reminder_id", r.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.ToppedUp++
	}
	result.Failed += failed

	tracing.RecordPhaseResult(span, result.ToppedUp, failed, nil)
	return nil
}

func (s *Service) reconcile(ctx context.Context, result *Result) (err error) {
	if !s.reconcileMu.TryLock() {
		result.ReconcileSkipped = true
		if s.metrics != nil {
			s.metrics.RecordReconcileSkipped(ctx)
		}
		slog.WarnContext(ctx, "reconcile already in flight, skipping")
		return nil
	}
	defer s.reconcileMu.Unlock()

	now := s.now()
	ctx, span := tracing.StartSweepPhaseSpan(ctx, phaseReconcile, now)
	defer span.End()
	defer s.observePhase(ctx, phaseReconcile, now)

	failed := 0
	defer func() {
		tracing.RecordPhaseResult(span, result.Reconciled, failed, err)
	}()

	// Alarms cancelled before a failure are gone, so registration still runs.
	var cancelErr error
	if err := s.alarms.CancelAllScheduled(ctx); err != nil {
		cancelErr = fmt.Errorf("cancel scheduled alarms: %w", err)
		if s.metrics != nil {
			s.metrics.RecordReconcileCancelFailure(ctx)
		}
		slog.WarnContext(ctx, "failed to cancel some scheduled alarms",
			slog.String("error", err.Error()),
		)
	}

	upcoming, err := s.notifications.GetUpcomingNotifications(ctx, now, s.cfg.PlatformHorizonLimit)
	if err != nil {
		return errors.Join(cancelErr, fmt.Errorf("get upcoming notifications: %w", err))
	}

	for _, n := range upcoming {
		if err := s.alarms.ScheduleAt(ctx, alarmRequest(n)); err != nil {
			failed++
			slog.WarnContext(ctx, "failed to register alarm",
				slog.Int64("notification_id", n.ID),
				slog.Int64("reminder_id", n.ReminderID),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Reconciled++
	}

	if s.metrics != nil {
		s.metrics.RecordReconcileRegistrations(ctx, "success", result.Reconciled)
		if failed > 0 {
			s.metrics.RecordReconcileRegistrations(ctx, "failed", failed)
		}
	}
	return cancelErr
}

func alarmRequest(n *domain.UpcomingNotification) domain.AlarmRequest {
	return domain.AlarmRequest{
		NotificationID: n.ID,
		ReminderID:     n.ReminderID,
		Title:          n.Title,
		Body:           n.Description,
		When:           n.ScheduledAt.UTC(),
		Category:       n.Category(),
		Payload: map[string]string{
			"notification_id": strconv.FormatInt(n.ID, 10),
			"reminder_id":     strconv.FormatInt(n.ReminderID, 10),
		},
	}
}

func (s *Service) observePhase(ctx context.Context, phase string, started time.Time) {
	if s.metrics != nil {
		s.metrics.RecordSweepPhaseDuration(ctx, phase, s.now().Sub(started))
	}
}

func (s *Service) record(ctx context.Context, result *Result) {
	if s.recorder == nil {
		return
	}
	err := s.recorder.RecordSweep(ctx, domain.SweepResultRecord{
		RunID:            result.RunID,
		StartedAt:        result.StartedAt,
		Trigger:          result.Trigger,
		ArchivedCount:    result.Archived,
		ToppedUpCount:    result.ToppedUp,
		FailedCount:      result.Failed,
		ReconciledCount:  result.Reconciled,
		ReconcileSkipped: result.ReconcileSkipped,
		Duration:         result.Duration,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to record sweep result",
			slog.String("run_id", result.RunID),
			slog.String("error", err.Error()),
		)
	}
}

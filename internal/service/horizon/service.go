package horizon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/observability/tracing"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/service/generator"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/service/interval"
)

const (
	DefaultDesiredCount  = 10
	DefaultBias          = 0.5
	DefaultMaxIterations = 10000

	modeEnsure = "ensure"
	modeRecalc = "recalc"
)

type Service struct {
	reminders     domain.ReminderRepository
	schedules     domain.ScheduleRepository
	notifications domain.NotificationRepository
	generator     *generator.Generator
	maxIterations int
	now           func() time.Time
	metrics       *metrics.SchedulerMetrics
	group         singleflight.Group
}

type Option func(*Service)

func WithMaxIterations(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithMetrics(m *metrics.SchedulerMetrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(
	reminders domain.ReminderRepository,
	schedules domain.ScheduleRepository,
	notifications domain.NotificationRepository,
	gen *generator.Generator,
	opts ...Option,
) *Service {
	s := &Service{
		reminders:     reminders,
		schedules:     schedules,
		notifications: notifications,
		generator:     gen,
		maxIterations: DefaultMaxIterations,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure tops up the reminder's future notifications to desiredCount. It is
// a no-op when enough already exist. Concurrent calls with the same
// arguments share one execution.
func (s *Service) Ensure(ctx context.Context, reminderID int64, desiredCount int, bias float64) error {
	key := strconv.FormatInt(reminderID, 10) + "/" + strconv.Itoa(desiredCount) + "/" + strconv.FormatFloat(bias, 'g', -1, 64)
	// The shared execution must outlive any single caller's cancellation.
	shared := context.WithoutCancel(ctx)
	_, err, coalesced := s.group.Do(key, func() (any, error) {
		return nil, s.maintain(shared, reminderID, desiredCount, bias, modeEnsure)
	})
	if coalesced {
		slog.DebugContext(ctx, "ensure coalesced with in-flight call",
			slog.Int64("reminder_id", reminderID),
		)
	}
	return err
}

// Recalc discards the reminder's future unresponded notifications and
// regenerates the horizon starting at the interval containing now.
func (s *Service) Recalc(ctx context.Context, reminderID int64, desiredCount int, bias float64) error {
	return s.maintain(ctx, reminderID, desiredCount, bias, modeRecalc)
}

func (s *Service) maintain(ctx context.Context, reminderID int64, desiredCount int, bias float64, mode string) (err error) {
	ctx, span := tracing.StartHorizonSpan(ctx, mode, reminderID, desiredCount, bias)
	defer span.End()

	iterations, inserted := 0, 0
	defer func() {
		tracing.RecordHorizonResult(span, iterations, inserted, err)
	}()

	reminder, err := s.reminders.GetReminder(ctx, reminderID)
	if errors.Is(err, domain.ErrReminderNotFound) {
		slog.WarnContext(ctx, "reminder not found, skipping horizon maintenance",
			slog.Int64("reminder_id", reminderID),
			slog.String("mode", mode),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get reminder %d: %w", reminderID, err)
	}

	now := s.now()

	if mode == modeRecalc {
		deleted, err := s.notifications.DeleteFutureUnrespondedNotifications(ctx, reminderID, now)
		if err != nil {
			return fmt.Errorf("delete future notifications of reminder %d: %w", reminderID, err)
		}
		slog.DebugContext(ctx, "cleared future notifications",
			slog.Int64("reminder_id", reminderID),
			slog.Int64("deleted", deleted),
		)
	}

	if reminder.IsArchived || reminder.IsMuted {
		return nil
	}

	if !reminder.IsRecurring {
		done, err := s.notifications.CountNotificationsWithStatus(ctx, reminderID, domain.ResponseDone)
		if err != nil {
			return fmt.Errorf("count completed notifications of reminder %d: %w", reminderID, err)
		}
		if done > 0 {
			return nil
		}
	}

	pending, err := s.notifications.GetUnrespondedNotifications(ctx, reminderID)
	if err != nil {
		return fmt.Errorf("get unresponded notifications of reminder %d: %w", reminderID, err)
	}
	future := 0
	for _, n := range pending {
		if n.ScheduledAt.After(now) {
			future++
		}
	}
	missing := desiredCount - future
	if missing <= 0 {
		return nil
	}

	schedules, err := s.schedules.GetSchedulesForReminder(ctx, reminderID)
	if err != nil {
		return fmt.Errorf("get schedules of reminder %d: %w", reminderID, err)
	}

	startIndex := interval.IndexAt(reminder, now, s.generator.Location())
	if mode == modeEnsure {
		maxIndex, ok, err := s.notifications.GetMaxIntervalIndex(ctx, reminderID)
		if err != nil {
			return fmt.Errorf("get max interval index of reminder %d: %w", reminderID, err)
		}
		if next := maxIndex + 1 - reminder.IndexOffset; ok && next > startIndex {
			startIndex = next
		}
	}

	found, iterations, err := s.discover(reminder, schedules, startIndex, missing, bias, now)
	if s.metrics != nil {
		s.metrics.RecordHorizonIterations(ctx, mode, iterations)
	}
	if err != nil {
		slog.ErrorContext(ctx, "horizon discovery failed",
			slog.Int64("reminder_id", reminderID),
			slog.Int("start_index", startIndex),
			slog.Int("iterations", iterations),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("reminder %d: %w", reminderID, err)
	}

	inserted, err = s.Persist(ctx, found)
	if s.metrics != nil && inserted > 0 {
		s.metrics.RecordNotificationsGenerated(ctx, mode, inserted)
	}
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "horizon maintained",
		slog.Int64("reminder_id", reminderID),
		slog.String("mode", mode),
		slog.Int("missing", missing),
		slog.Int("generated", len(found)),
		slog.Int("inserted", inserted),
		slog.Int("iterations", iterations),
	)
	return nil
}

// discover walks intervals from startIndex until at least missing instants
// are found after now and inside the reminder's date bounds. It stops early
// once intervals begin after the end date.
func (s *Service) discover(
	reminder *domain.Reminder,
	schedules []*domain.Schedule,
	startIndex, missing int,
	bias float64,
	now time.Time,
) ([]domain.NotificationTime, int, error) {
	loc := s.generator.Location()
	var found []domain.NotificationTime

	for i := 0; ; i++ {
		if i >= s.maxIterations {
			return found, i, domain.ErrHorizonExhausted
		}

		index := startIndex + i
		if reminder.EndDate != nil && interval.Current(reminder, index, loc).Start.After(*reminder.EndDate) {
			if len(found) == 0 && !hasAvailability(schedules) {
				return nil, i, domain.ErrHorizonExhausted
			}
			return found, i, nil
		}

		for _, nt := range s.generator.Generate(reminder, schedules, index, bias) {
			if !nt.ScheduledAt.After(now) || nt.ScheduledAt.Before(reminder.StartDate) {
				continue
			}
			if reminder.EndDate != nil && nt.ScheduledAt.After(*reminder.EndDate) {
				continue
			}
			nt.IntervalIndex += reminder.IndexOffset
			found = append(found, nt)
		}

		if len(found) >= missing {
			return found, i + 1, nil
		}
	}
}

// hasAvailability reports whether any schedule enables at least one weekday.
// An enabled day always yields a non-empty window, so availability recurs weekly.
func hasAvailability(schedules []*domain.Schedule) bool {
	for _, sc := range schedules {
		if sc != nil && !sc.Days.IsEmpty() {
			return true
		}
	}
	return false
}

// Persist inserts each notification. Slots that already exist are skipped;
// any other storage error stops the batch.
func (s *Service) Persist(ctx context.Context, notifications []domain.NotificationTime) (int, error) {
	inserted, duplicates := 0, 0
	for _, nt := range notifications {
		err := s.notifications.InsertNotification(ctx, nt.ToNotification())
		if errors.Is(err, domain.ErrConflict) {
			duplicates++
			continue
		}
		if err != nil {
			return inserted, fmt.Errorf("insert notification for reminder %d interval %d segment %d: %w",
				nt.ReminderID, nt.IntervalIndex, nt.SegmentIndex, err)
		}
		inserted++
	}

	if duplicates > 0 {
		slog.DebugContext(ctx, "skipped existing notification slots",
			slog.Int("duplicates", duplicates),
		)
		if s.metrics != nil {
			s.metrics.RecordDuplicateSlots(ctx, duplicates)
		}
	}
	return inserted, nil
}

// Validate reports ErrHorizonExhausted when the reminder's schedules can never
// produce a notification, or when none falls between now and the end date.
// Nothing is read from or written to storage.
func (s *Service) Validate(reminder *domain.Reminder, schedules []*domain.Schedule) error {
	if err := reminder.Validate(); err != nil {
		return err
	}

	now := s.now()
	startIndex := interval.IndexAt(reminder, now, s.generator.Location())
	found, _, err := s.discover(reminder, schedules, startIndex, 1, DefaultBias, now)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidReminder, err)
	}
	if len(found) == 0 {
		return fmt.Errorf("%w: %w: nothing to schedule before end date", domain.ErrInvalidReminder, domain.ErrHorizonExhausted)
	}
	return nil
}

// Reanchor raises r.IndexOffset so that intervals numbered from r's current
// start date are stored above every slot already recorded for the reminder.
// Callers run it before saving an edit that moves the start date.
func (s *Service) Reanchor(ctx context.Context, r *domain.Reminder) error {
	maxIndex, ok, err := s.notifications.GetMaxIntervalIndex(ctx, r.ID)
	if err != nil {
		return fmt.Errorf("get max interval index of reminder %d: %w", r.ID, err)
	}
	if !ok {
		return nil
	}

	first := interval.IndexAt(r, s.now(), s.generator.Location())
	if offset := maxIndex + 1 - first; offset > r.IndexOffset {
		slog.InfoContext(ctx, "reminder intervals re-anchored",
			slog.Int64("reminder_id", r.ID),
			slog.Int("previous_offset", r.IndexOffset),
			slog.Int("offset", offset),
		)
		r.IndexOffset = offset
	}
	return nil
}

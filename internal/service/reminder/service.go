package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

//go:generate mockgen -source=service.go -destination=service_mock_test.go -package=reminder

type HorizonMaintainer interface {
	Reanchor(ctx context.Context, r *domain.Reminder) error
	Recalc(ctx context.Context, reminderID int64, desiredCount int, bias float64) error
	Validate(reminder *domain.Reminder, schedules []*domain.Schedule) error
}

type SweepTrigger interface {
	Trigger()
}

// Service owns reminder and schedule edits. Every edit that changes when a
// reminder may fire regenerates its future notifications and requests a sweep.
type Service struct {
	reminders     domain.ReminderRepository
	schedules     domain.ScheduleRepository
	notifications domain.NotificationRepository
	horizon       HorizonMaintainer
	sweep         SweepTrigger
	desiredCount  int
	bias          float64
	now           func() time.Time
}

func NewService(
	reminders domain.ReminderRepository,
	schedules domain.ScheduleRepository,
	notifications domain.NotificationRepository,
	horizon HorizonMaintainer,
	sweep SweepTrigger,
	desiredCount int,
	bias float64,
) *Service {
	return &Service{
		reminders:     reminders,
		schedules:     schedules,
		notifications: notifications,
		horizon:       horizon,
		sweep:         sweep,
		desiredCount:  desiredCount,
		bias:          bias,
		now:           time.Now,
	}
}

// CreateReminder validates that the reminder can be satisfied by the given
// schedules before anything is saved.
func (s *Service) CreateReminder(ctx context.Context, r *domain.Reminder, scheduleIDs []int64) error {
	schedules, err := s.loadSchedules(ctx, scheduleIDs)
	if err != nil {
		return err
	}
	if err := s.horizon.Validate(r, schedules); err != nil {
		return err
	}

	if err := s.reminders.CreateReminder(ctx, r); err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}
	if err := s.schedules.SetReminderSchedules(ctx, r.ID, scheduleIDs); err != nil {
		return fmt.Errorf("attach schedules to reminder %d: %w", r.ID, err)
	}

	slog.InfoContext(ctx, "reminder created",
		slog.Int64("reminder_id", r.ID),
		slog.String("interval_unit", r.IntervalUnit.String()),
		slog.Int("interval_count", r.IntervalCount),
		slog.Int("occurrences_per_interval", r.OccurrencesPerInterval),
		slog.Int("schedule_count", len(scheduleIDs)),
	)

	return s.regenerate(ctx, r.ID)
}

// UpdateReminder replaces the recurrence definition and schedule set. Mute
// and archive state are kept from the stored reminder.
func (s *Service) UpdateReminder(ctx context.Context, r *domain.Reminder, scheduleIDs []int64) error {
	existing, err := s.reminders.GetReminder(ctx, r.ID)
	if err != nil {
		return err
	}
	r.IsMuted = existing.IsMuted
	r.IsArchived = existing.IsArchived
	r.CreatedAt = existing.CreatedAt
	r.IndexOffset = existing.IndexOffset

	schedules, err := s.loadSchedules(ctx, scheduleIDs)
	if err != nil {
		return err
	}
	if err := s.horizon.Validate(r, schedules); err != nil {
		return err
	}

	// Interval numbering follows the start date; stored history keeps the old
	// numbering, so new slots are moved above it.
	if !existing.StartDate.Equal(r.StartDate) {
		slog.InfoContext(ctx, "reminder start date changed",
			slog.Int64("reminder_id", r.ID),
			slog.Time("previous_start", existing.StartDate),
			slog.Time("start", r.StartDate),
		)
		if err := s.horizon.Reanchor(ctx, r); err != nil {
			return err
		}
	}

	if err := s.reminders.UpdateReminder(ctx, r); err != nil {
		return fmt.Errorf("update reminder %d: %w", r.ID, err)
	}
	if err := s.schedules.SetReminderSchedules(ctx, r.ID, scheduleIDs); err != nil {
		return fmt.Errorf("attach schedules to reminder %d: %w", r.ID, err)
	}

	return s.regenerate(ctx, r.ID)
}

func (s *Service) Mute(ctx context.Context, reminderID int64) error {
	if err := s.reminders.SetReminderMuted(ctx, reminderID, true); err != nil {
		return err
	}
	deleted, err := s.notifications.DeleteFutureUnrespondedNotifications(ctx, reminderID, s.now())
	if err != nil {
		return fmt.Errorf("clear notifications of muted reminder %d: %w", reminderID, err)
	}
	slog.InfoContext(ctx, "reminder muted",
		slog.Int64("reminder_id", reminderID),
		slog.Int64("deleted_notifications", deleted),
	)
	s.sweep.Trigger()
	return nil
}

func (s *Service) Unmute(ctx context.Context, reminderID int64) error {
	if err := s.reminders.SetReminderMuted(ctx, reminderID, false); err != nil {
		return err
	}
	slog.InfoContext(ctx, "reminder unmuted",
		slog.Int64("reminder_id", reminderID),
	)
	return s.regenerate(ctx, reminderID)
}

// NextNotification returns the earliest unresponded notification after now.
func (s *Service) NextNotification(ctx context.Context, reminderID int64) (*domain.Notification, error) {
	return s.notifications.GetNextNotification(ctx, reminderID, s.now())
}

func (s *Service) CreateSchedule(ctx context.Context, schedule *domain.Schedule) error {
	if err := s.schedules.CreateSchedule(ctx, schedule); err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	slog.InfoContext(ctx, "schedule created",
		slog.Int64("schedule_id", schedule.ID),
		slog.String("label", schedule.Label),
	)
	return nil
}

// UpdateSchedule rejects the edit when any attached reminder would be left
// without availability, then regenerates every attached reminder.
func (s *Service) UpdateSchedule(ctx context.Context, schedule *domain.Schedule) error {
	if _, err := s.schedules.GetSchedule(ctx, schedule.ID); err != nil {
		return err
	}

	reminderIDs, err := s.schedules.GetReminderIDsForSchedule(ctx, schedule.ID)
	if err != nil {
		return fmt.Errorf("get reminders of schedule %d: %w", schedule.ID, err)
	}

	for _, id := range reminderIDs {
		if err := s.validateWithSchedule(ctx, id, schedule); err != nil {
			return err
		}
	}

	if err := s.schedules.UpdateSchedule(ctx, schedule); err != nil {
		return fmt.Errorf("update schedule %d: %w", schedule.ID, err)
	}

	var errs []error
	for _, id := range reminderIDs {
		if err := s.horizon.Recalc(ctx, id, s.desiredCount, s.bias); err != nil {
			slog.ErrorContext(ctx, "failed to recalc reminder after schedule edit",
				slog.Int64("reminder_id", id),
				slog.Int64("schedule_id", schedule.ID),
				slog.String("error", err.Error()),
			)
			errs = append(errs, err)
		}
	}
	s.sweep.Trigger()

	return errors.Join(errs...)
}

func (s *Service) validateWithSchedule(ctx context.Context, reminderID int64, updated *domain.Schedule) error {
	r, err := s.reminders.GetReminder(ctx, reminderID)
	if errors.Is(err, domain.ErrReminderNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get reminder %d: %w", reminderID, err)
	}
	if r.IsArchived {
		return nil
	}

	schedules, err := s.schedules.GetSchedulesForReminder(ctx, reminderID)
	if err != nil {
		return fmt.Errorf("get schedules of reminder %d: %w", reminderID, err)
	}
	for i, sc := range schedules {
		if sc.ID == updated.ID {
			schedules[i] = updated
		}
	}

	if err := s.horizon.Validate(r, schedules); err != nil {
		return fmt.Errorf("reminder %d: %w", reminderID, err)
	}
	return nil
}

func (s *Service) loadSchedules(ctx context.Context, ids []int64) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0, len(ids))
	for _, id := range ids {
		sc, err := s.schedules.GetSchedule(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("schedule %d: %w", id, err)
		}
		schedules = append(schedules, sc)
	}
	return schedules, nil
}

func (s *Service) regenerate(ctx context.Context, reminderID int64) error {
	if err := s.horizon.Recalc(ctx, reminderID, s.desiredCount, s.bias); err != nil {
		return fmt.Errorf("recalc reminder %d: %w", reminderID, err)
	}
	s.sweep.Trigger()
	return nil
}

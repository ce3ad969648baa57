package response

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

//go:generate mockgen -source=service.go -destination=service_mock_test.go -package=response

type HorizonMaintainer interface {
	Ensure(ctx context.Context, reminderID int64, desiredCount int, bias float64) error
}

// SweepTrigger schedules a maintenance sweep without waiting for it.
type SweepTrigger interface {
	Trigger()
}

type Service struct {
	reminders     domain.ReminderRepository
	notifications domain.NotificationRepository
	horizon       HorizonMaintainer
	sweep         SweepTrigger
	desiredCount  int
	bias          float64
	now           func() time.Time
}

func NewService(
	reminders domain.ReminderRepository,
	notifications domain.NotificationRepository,
	horizon HorizonMaintainer,
	sweep SweepTrigger,
	desiredCount int,
	bias float64,
) *Service {
	return &Service{
		reminders:     reminders,
		notifications: notifications,
		horizon:       horizon,
		sweep:         sweep,
		desiredCount:  desiredCount,
		bias:          bias,
		now:           time.Now,
	}
}

// Respond records a user's answer to a notification. For one-time tasks,
// done closes the task and later reopens it. Every response also marks the
// reminder's other past-due notifications as no_response. Answered
// notifications are history: the only change accepted on one is later
// replacing a task's done.
func (s *Service) Respond(ctx context.Context, notificationID int64, status domain.ResponseStatus) error {
	switch status {
	case domain.ResponseDone, domain.ResponseSkip, domain.ResponseLater:
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidResponseStatus, status)
	}

	notification, err := s.notifications.GetNotification(ctx, notificationID)
	if errors.Is(err, domain.ErrNotificationNotFound) {
		slog.WarnContext(ctx, "notification not found, ignoring response",
			slog.Int64("notification_id", notificationID),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get notification %d: %w", notificationID, err)
	}

	reminder, err := s.reminders.GetReminder(ctx, notification.ReminderID)
	if errors.Is(err, domain.ErrReminderNotFound) {
		slog.WarnContext(ctx, "reminder not found, ignoring response",
			slog.Int64("notification_id", notificationID),
			slog.Int64("reminder_id", notification.ReminderID),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get reminder %d: %w", notification.ReminderID, err)
	}

	if notification.IsResponded() && !undoesDone(reminder, notification, status) {
		slog.InfoContext(ctx, "notification already responded, ignoring response",
			slog.Int64("notification_id", notificationID),
			slog.String("recorded", notification.ResponseStatus.String()),
			slog.String("status", status.String()),
		)
		return nil
	}

	now := s.now()
	patch := domain.NotificationPatch{
		ResponseStatus: &status,
		ResponseAt:     &now,
	}
	closesTask := !reminder.IsRecurring && status == domain.ResponseDone
	reopensTask := !reminder.IsRecurring && status == domain.ResponseLater
	if closesTask {
		patch.ScheduledAt = &now
	}

	if err := s.notifications.UpdateNotification(ctx, notificationID, patch); err != nil {
		return fmt.Errorf("update notification %d: %w", notificationID, err)
	}

	slog.InfoContext(ctx, "notification responded",
		slog.Int64("notification_id", notificationID),
		slog.Int64("reminder_id", reminder.ID),
		slog.String("status", status.String()),
	)

	switch {
	case closesTask:
		deleted, err := s.notifications.DeleteFutureUnrespondedNotifications(ctx, reminder.ID, now)
		if err != nil {
			return fmt.Errorf("close task %d: %w", reminder.ID, err)
		}
		slog.DebugContext(ctx, "task closed",
			slog.Int64("reminder_id", reminder.ID),
			slog.Int64("deleted_notifications", deleted),
		)
	case reopensTask:
		if err := s.horizon.Ensure(ctx, reminder.ID, s.desiredCount, s.bias); err != nil {
			return fmt.Errorf("reopen task %d: %w", reminder.ID, err)
		}
	}

	marked, err := s.notifications.MarkPastDueNoResponse(ctx, reminder.ID, now)
	if err != nil {
		return fmt.Errorf("mark past-due notifications of reminder %d: %w", reminder.ID, err)
	}
	if marked > 0 {
		slog.DebugContext(ctx, "marked past-due notifications as no_response",
			slog.Int64("reminder_id", reminder.ID),
			slog.Int64("marked", marked),
		)
	}

	s.sweep.Trigger()
	return nil
}

func undoesDone(r *domain.Reminder, n *domain.Notification, status domain.ResponseStatus) bool {
	return !r.IsRecurring && status == domain.ResponseLater &&
		n.ResponseStatus != nil && *n.ResponseStatus == domain.ResponseDone
}

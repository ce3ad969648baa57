package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=domain

type ReminderRepository interface {
	GetReminder(ctx context.Context, id int64) (*Reminder, error)
	GetActiveReminders(ctx context.Context) ([]*Reminder, error)
	CreateReminder(ctx context.Context, reminder *Reminder) error
	UpdateReminder(ctx context.Context, reminder *Reminder) error
	SetReminderMuted(ctx context.Context, id int64, muted bool) error
	ArchiveReminder(ctx context.Context, id int64) error
}

type ScheduleRepository interface {
	GetSchedule(ctx context.Context, id int64) (*Schedule, error)
	GetSchedulesForReminder(ctx context.Context, reminderID int64) ([]*Schedule, error)
	GetReminderIDsForSchedule(ctx context.Context, scheduleID int64) ([]int64, error)
	CreateSchedule(ctx context.Context, schedule *Schedule) error
	UpdateSchedule(ctx context.Context, schedule *Schedule) error
	SetReminderSchedules(ctx context.Context, reminderID int64, scheduleIDs []int64) error
}

type NotificationRepository interface {
	GetNotification(ctx context.Context, id int64) (*Notification, error)
	GetUnrespondedNotifications(ctx context.Context, reminderID int64) ([]*Notification, error)
	GetNextNotification(ctx context.Context, reminderID int64, after time.Time) (*Notification, error)
	GetMaxIntervalIndex(ctx context.Context, reminderID int64) (index int, ok bool, err error)
	CountNotificationsWithStatus(ctx context.Context, reminderID int64, status ResponseStatus) (int64, error)
	GetUpcomingNotifications(ctx context.Context, after time.Time, limit int) ([]*UpcomingNotification, error)
	// InsertNotification returns ErrConflict when the slot already exists.
	InsertNotification(ctx context.Context, notification *Notification) error
	UpdateNotification(ctx context.Context, id int64, patch NotificationPatch) error
	DeleteFutureUnrespondedNotifications(ctx context.Context, reminderID int64, cutoff time.Time) (int64, error)
	MarkPastDueNoResponse(ctx context.Context, reminderID int64, now time.Time) (int64, error)
}

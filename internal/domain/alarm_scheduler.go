package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=alarm_scheduler.go -destination=alarm_scheduler_mock.go -package=domain

// AlarmRequest is one notification handed to the platform delivery subsystem.
type AlarmRequest struct {
	NotificationID int64
	ReminderID     int64
	Title          string
	Body           string
	When           time.Time
	Category       string
	Payload        map[string]string
}

// ScheduledAlarm is an alarm currently registered with the platform.
type ScheduledAlarm struct {
	NotificationID int64
	TaskName       string
	When           time.Time
}

// AlarmScheduler is the platform notification subsystem. Delivery is best
// effort; the sweep rotates the registered set on every run.
type AlarmScheduler interface {
	CancelAllScheduled(ctx context.Context) error
	ScheduleAt(ctx context.Context, req AlarmRequest) error
	ListScheduled(ctx context.Context) ([]ScheduledAlarm, error)
}

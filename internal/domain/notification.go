package domain

import (
	"fmt"
	"time"
)

type ResponseStatus string

const (
	ResponseDone       ResponseStatus = "done"
	ResponseSkip       ResponseStatus = "skip"
	ResponseNoResponse ResponseStatus = "no_response"
	ResponseLater      ResponseStatus = "later"
)

func (s ResponseStatus) String() string {
	return string(s)
}

// ParseUserResponse accepts the statuses a user may submit. no_response is
// set by the system only.
func ParseUserResponse(s string) (ResponseStatus, error) {
	switch status := ResponseStatus(s); status {
	case ResponseDone, ResponseSkip, ResponseLater:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidResponseStatus, s)
	}
}

// Notification is one scheduled reminder instance. The triple
// (ReminderID, IntervalIndex, SegmentIndex) is unique.
type Notification struct {
	ID             int64
	ReminderID     int64
	ScheduledAt    time.Time
	IntervalIndex  int
	SegmentIndex   int
	ResponseStatus *ResponseStatus
	ResponseAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (n *Notification) IsResponded() bool {
	return n.ResponseStatus != nil
}

// NotificationTime is a generated slot before it is persisted.
type NotificationTime struct {
	ReminderID    int64
	ScheduledAt   time.Time
	IntervalIndex int
	SegmentIndex  int
}

func (t NotificationTime) ToNotification() *Notification {
	return &Notification{
		ReminderID:    t.ReminderID,
		ScheduledAt:   t.ScheduledAt.UTC(),
		IntervalIndex: t.IntervalIndex,
		SegmentIndex:  t.SegmentIndex,
	}
}

// NotificationPatch is a partial update; nil fields are left untouched.
type NotificationPatch struct {
	ScheduledAt    *time.Time
	ResponseStatus *ResponseStatus
	ResponseAt     *time.Time
}

// UpcomingNotification joins a notification with the reminder text needed to
// register it with the platform.
type UpcomingNotification struct {
	Notification
	Title       string
	Description string
	IsRecurring bool
}

func (u *UpcomingNotification) Category() string {
	return categoryFor(u.IsRecurring)
}

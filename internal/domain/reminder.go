package domain

import (
	"fmt"
	"time"
)

// IntervalUnit is the calendar unit a reminder recurs on.
type IntervalUnit string

const (
	UnitMinute IntervalUnit = "minute"
	UnitHour   IntervalUnit = "hour"
	UnitDay    IntervalUnit = "day"
	UnitWeek   IntervalUnit = "week"
	UnitMonth  IntervalUnit = "month"
	UnitYear   IntervalUnit = "year"
)

func (u IntervalUnit) String() string {
	return string(u)
}

func (u IntervalUnit) IsValid() bool {
	switch u {
	case UnitMinute, UnitHour, UnitDay, UnitWeek, UnitMonth, UnitYear:
		return true
	default:
		return false
	}
}

// Reminder is a recurrence definition: OccurrencesPerInterval notifications
// every IntervalCount IntervalUnits, starting at StartDate.
type Reminder struct {
	ID                     int64
	Title                  string
	Description            string
	IntervalUnit           IntervalUnit
	IntervalCount          int
	OccurrencesPerInterval int
	IsRecurring            bool
	IsMuted                bool
	IsArchived             bool
	TrackStreak            bool
	StartDate              time.Time
	EndDate                *time.Time
	// IndexOffset is added to interval indices computed from StartDate before
	// they are stored, keeping slots unique across start date edits.
	IndexOffset            int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Validate checks the structural invariants of a reminder.
func (r *Reminder) Validate() error {
	if !r.IntervalUnit.IsValid() {
		return fmt.Errorf("%w: unknown interval unit %q", ErrInvalidReminder, r.IntervalUnit)
	}
	if r.IntervalCount < 1 {
		return fmt.Errorf("%w: interval_count must be >= 1", ErrInvalidReminder)
	}
	if r.OccurrencesPerInterval < 1 {
		return fmt.Errorf("%w: occurrences_per_interval must be >= 1", ErrInvalidReminder)
	}
	if r.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", ErrInvalidReminder)
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("%w: end_date precedes start_date", ErrInvalidReminder)
	}
	return nil
}

// HasEnded reports whether the reminder's end date has passed at now.
func (r *Reminder) HasEnded(now time.Time) bool {
	return r.EndDate != nil && r.EndDate.Before(now)
}

// Platform categories attached to registered alarms.
const (
	CategoryReminder = "reminder"
	CategoryTask     = "task"
)

func categoryFor(recurring bool) string {
	if recurring {
		return CategoryReminder
	}
	return CategoryTask
}

// Category is the platform category used when registering alarms.
func (r *Reminder) Category() string {
	return categoryFor(r.IsRecurring)
}

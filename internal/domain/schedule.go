package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayMask is a 7-bit set of weekdays, bit 0 = Sunday .. bit 6 = Saturday.
type DayMask uint8

const AllDays DayMask = 0x7f

func NewDayMask(days ...time.Weekday) DayMask {
	var m DayMask
	for _, d := range days {
		m = m.With(d)
	}
	return m
}

func (m DayMask) Has(d time.Weekday) bool {
	return m&(1<<uint(d)) != 0
}

func (m DayMask) With(d time.Weekday) DayMask {
	return m | (1 << uint(d))
}

func (m DayMask) Without(d time.Weekday) DayMask {
	return m &^ (1 << uint(d))
}

func (m DayMask) IsEmpty() bool {
	return m&AllDays == 0
}

// TimeOfDay is a wall-clock time parsed from "HH:MM".
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidSchedule, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour out of range in %q", ErrInvalidSchedule, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute out of range in %q", ErrInvalidSchedule, s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

// On returns the instant at this time of day on the calendar day of d.
func (t TimeOfDay) On(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, 0, 0, d.Location())
}

// Schedule is a weekly availability template shared between reminders.
type Schedule struct {
	ID        int64
	Label     string
	Days      DayMask
	StartTime TimeOfDay
	EndTime   TimeOfDay
}

// IsAllDay reports the start == end convention for a full-day window.
func (s *Schedule) IsAllDay() bool {
	return s.StartTime == s.EndTime
}

// CrossesMidnight reports a window that ends on the following day.
func (s *Schedule) CrossesMidnight() bool {
	return s.EndTime.minutes() < s.StartTime.minutes()
}

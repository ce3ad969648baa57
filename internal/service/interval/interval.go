package interval

import (
	"time"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

// Interval is one recurrence period of a reminder. End is inclusive and sits
// exactly one millisecond before the next interval's Start.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}

// Current returns the interval with the given index, counted from the unit
// boundary that contains the reminder's start date in loc.
func Current(r *domain.Reminder, index int, loc *time.Location) Interval {
	anchor := StartOfUnit(r.StartDate.In(loc), r.IntervalUnit)
	count := max(r.IntervalCount, 1)

	start := advance(anchor, r.IntervalUnit, count*index)
	next := advance(anchor, r.IntervalUnit, count*(index+1))

	return Interval{
		Start: start,
		End:   next.Add(-time.Millisecond),
	}
}

// IndexAt returns the index of the interval that contains t. Instants before
// the first interval map to 0.
func IndexAt(r *domain.Reminder, t time.Time, loc *time.Location) int {
	t = t.In(loc)
	anchor := StartOfUnit(r.StartDate.In(loc), r.IntervalUnit)
	if !t.After(anchor) {
		return 0
	}
	count := max(r.IntervalCount, 1)

	var units int
	switch r.IntervalUnit {
	case domain.UnitMinute:
		units = int(t.Sub(anchor) / time.Minute)
	case domain.UnitHour:
		units = int(t.Sub(anchor) / time.Hour)
	case domain.UnitDay:
		units = civilDays(anchor, t)
	case domain.UnitWeek:
		units = civilDays(anchor, t) / 7
	case domain.UnitMonth:
		units = (t.Year()-anchor.Year())*12 + int(t.Month()-anchor.Month())
	case domain.UnitYear:
		units = t.Year() - anchor.Year()
	}

	index := max(units/count, 0)

	// The estimate can be off by one around DST shifts.
	for index > 0 && Current(r, index, loc).Start.After(t) {
		index--
	}
	for Current(r, index, loc).End.Before(t) {
		index++
	}
	return index
}

// StartOfUnit truncates t to the boundary of unit in t's location. Weeks
// start on Sunday.
func StartOfUnit(t time.Time, unit domain.IntervalUnit) time.Time {
	loc := t.Location()
	switch unit {
	case domain.UnitMinute:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc)
	case domain.UnitHour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, loc)
	case domain.UnitWeek:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		return day.AddDate(0, 0, -int(day.Weekday()))
	case domain.UnitMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	case domain.UnitYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
}

// advance moves t forward n units. Sub-day units are absolute durations;
// calendar units keep the local wall clock so a day stays a calendar day
// across DST transitions.
func advance(t time.Time, unit domain.IntervalUnit, n int) time.Time {
	switch unit {
	case domain.UnitMinute:
		return t.Add(time.Duration(n) * time.Minute)
	case domain.UnitHour:
		return t.Add(time.Duration(n) * time.Hour)
	case domain.UnitWeek:
		return t.AddDate(0, 0, 7*n)
	case domain.UnitMonth:
		return t.AddDate(0, n, 0)
	case domain.UnitYear:
		return t.AddDate(n, 0, 0)
	default:
		return t.AddDate(0, 0, n)
	}
}

func civilDays(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

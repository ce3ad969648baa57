package window

import (
	"sort"
	"time"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

// mergeGap is the largest gap between two windows that still merges them.
// It matches the 1ms between an all-day window's end and the next midnight.
const mergeGap = time.Millisecond

// Window is a contiguous local-time range in which a notification may fire.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Minutes() float64 {
	return w.End.Sub(w.Start).Minutes()
}

// Segment is a slice of the allowed minutes of an interval, measured from the
// start of the first merged window.
type Segment struct {
	Start  float64
	Length float64
}

// ForSchedule builds one window per enabled day touching [start, end],
// clamped to that range. The day before start is included so windows that
// cross midnight into the range are kept.
func ForSchedule(s *domain.Schedule, start, end time.Time, loc *time.Location) []Window {
	if s == nil || s.Days.IsEmpty() {
		return nil
	}
	start, end = start.In(loc), end.In(loc)
	if end.Before(start) {
		return nil
	}

	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -1)

	var windows []Window
	for day := first; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !s.Days.Has(day.Weekday()) {
			continue
		}

		w := dayWindow(s, day)
		if w.Start.Before(start) {
			w.Start = start
		}
		if w.End.After(end) {
			w.End = end
		}
		if !w.End.After(w.Start) {
			continue
		}
		windows = append(windows, w)
	}
	return windows
}

func dayWindow(s *domain.Schedule, day time.Time) Window {
	switch {
	case s.IsAllDay():
		return Window{Start: day, End: day.AddDate(0, 0, 1).Add(-time.Millisecond)}
	case s.CrossesMidnight():
		return Window{Start: s.StartTime.On(day), End: s.EndTime.On(day.AddDate(0, 0, 1))}
	default:
		return Window{Start: s.StartTime.On(day), End: s.EndTime.On(day)}
	}
}

// ForSchedules is the merged union of every schedule's windows. A reminder
// without schedules has no availability.
func ForSchedules(schedules []*domain.Schedule, start, end time.Time, loc *time.Location) []Window {
	var all []Window
	for _, s := range schedules {
		all = append(all, ForSchedule(s, start, end, loc)...)
	}
	if len(all) == 0 {
		return nil
	}
	return Merge(all)
}

// Merge sorts windows by start and folds overlapping or touching ranges.
// Merging an already merged list returns an equal list.
func Merge(windows []Window) []Window {
	if len(windows) == 0 {
		return nil
	}

	sorted := make([]Window, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].End.Before(sorted[j].End)
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []Window{sorted[0]}
	for _, w := range sorted[1:] {
		last := &merged[len(merged)-1]
		if w.Start.Sub(last.End) <= mergeGap {
			if w.End.After(last.End) {
				last.End = w.End
			}
			continue
		}
		merged = append(merged, w)
	}
	return merged
}

func TotalMinutes(windows []Window) float64 {
	var total float64
	for _, w := range windows {
		total += w.Minutes()
	}
	return total
}

// Segments cuts total minutes into n equal contiguous segments.
func Segments(total float64, n int) []Segment {
	if n < 1 || total <= 0 {
		return nil
	}
	length := total / float64(n)
	segments := make([]Segment, n)
	for i := range segments {
		segments[i] = Segment{Start: float64(i) * length, Length: length}
	}
	return segments
}

// InstantAt maps an offset in allowed minutes onto the windows, consuming
// them in order. Offsets past the total land on the last window's end.
func InstantAt(windows []Window, offsetMinutes float64) time.Time {
	if len(windows) == 0 {
		return time.Time{}
	}

	remaining := max(offsetMinutes, 0)
	for _, w := range windows {
		minutes := w.Minutes()
		if remaining <= minutes {
			at := w.Start.Add(time.Duration(remaining * float64(time.Minute)))
			if at.After(w.End) {
				at = w.End
			}
			return at
		}
		remaining -= minutes
	}
	return windows[len(windows)-1].End
}

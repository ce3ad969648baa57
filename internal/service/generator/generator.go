package generator

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/service/interval"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/service/window"
)

const neutralBias = 0.5

// RandomSource yields uniform draws in [0, 1).
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

type Generator struct {
	rnd RandomSource
	loc *time.Location
}

// New returns a generator working in loc. A nil source uses the process-wide
// math/rand/v2 generator.
func New(rnd RandomSource, loc *time.Location) *Generator {
	if rnd == nil {
		rnd = globalSource{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Generator{rnd: rnd, loc: loc}
}

func (g *Generator) Location() *time.Location {
	return g.loc
}

// Generate places one notification per segment of the interval's allowed
// time. An interval without availability yields nil.
func (g *Generator) Generate(r *domain.Reminder, schedules []*domain.Schedule, index int, bias float64) []domain.NotificationTime {
	iv := interval.Current(r, index, g.loc)

	windows := window.ForSchedules(schedules, iv.Start, iv.End, g.loc)
	total := window.TotalMinutes(windows)
	if total <= 0 {
		return nil
	}

	segments := window.Segments(total, r.OccurrencesPerInterval)
	times := make([]domain.NotificationTime, 0, len(segments))
	for i, seg := range segments {
		offset := BiasedOffset(seg.Start, seg.Length, g.rnd.Float64(), bias)
		times = append(times, domain.NotificationTime{
			ReminderID:    r.ID,
			ScheduledAt:   window.InstantAt(windows, offset).UTC(),
			IntervalIndex: index,
			SegmentIndex:  i,
		})
	}
	return times
}

// Exponent maps bias to the power applied to a uniform draw. Values below
// 0.5 push draws toward the segment start, values above toward the end.
func Exponent(bias float64) float64 {
	if !(bias >= 0 && bias <= 1) {
		bias = neutralBias
	}
	switch {
	case bias < neutralBias:
		return 1 + (neutralBias-bias)*2
	case bias > neutralBias:
		return 1 / (1 + (bias-neutralBias)*2)
	default:
		return 1
	}
}

// BiasedOffset returns segStart + u^Exponent(bias) * segLen.
func BiasedOffset(segStart, segLen, u, bias float64) float64 {
	u = math.Min(math.Max(u, 0), 1)
	return segStart + math.Pow(u, Exponent(bias))*segLen
}

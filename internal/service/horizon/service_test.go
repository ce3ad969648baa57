package horizon

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/service/generator"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

var baseNow = time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

func dailyReminder(id int64) *domain.Reminder {
	return &domain.Reminder{
		ID:                     id,
		Title:                  "Drink water",
		IntervalUnit:           domain.UnitDay,
		IntervalCount:          1,
		OccurrencesPerInterval: 2,
		IsRecurring:            true,
		StartDate:              time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func allDay() *domain.Schedule {
	return &domain.Schedule{ID: 1, Days: domain.AllDays}
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func newTestService(store *memStore, clk *clock, opts ...Option) *Service {
	gen := generator.New(constSource(0.5), time.UTC)
	opts = append([]Option{WithClock(clk.Now)}, opts...)
	return NewService(store, store, store, gen, opts...)
}

func seed(store *memStore, r *domain.Reminder, schedules ...*domain.Schedule) {
	store.reminders[r.ID] = r
	store.schedules[r.ID] = schedules
	if r.ID > store.nextID {
		store.nextID = r.ID + 1000
	}
}

func futureUnresponded(store *memStore, reminderID int64, now time.Time) []*domain.Notification {
	var out []*domain.Notification
	for _, n := range store.all(reminderID) {
		if !n.IsResponded() && n.ScheduledAt.After(now) {
			out = append(out, n)
		}
	}
	return out
}

func assertUniqueSlots(t *testing.T, store *memStore, reminderID int64) {
	t.Helper()
	seen := make(map[[2]int]bool)
	for _, n := range store.all(reminderID) {
		k := [2]int{n.IntervalIndex, n.SegmentIndex}
		if seen[k] {
			t.Fatalf("duplicate slot interval=%d segment=%d", n.IntervalIndex, n.SegmentIndex)
		}
		seen[k] = true
	}
}

func TestService_Ensure_FillsToDesiredCount(t *testing.T) {
	store := newMemStore()
	seed(store, dailyReminder(1), allDay())
	clk := &clock{now: baseNow}
	svc := newTestService(store, clk)

	if err := svc.Ensure(context.Background(), 1, 10, 0.5); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	future := futureUnresponded(store, 1, baseNow)
	// Mar 3 contributes only its evening slot, then two per day through Mar 8.
	if len(future) != 11 {
		t.Errorf("future notifications = %d, want 11", len(future))
	}
	for _, n := range future {
		if n.ScheduledAt.Location() != time.UTC {
			t.Errorf("ScheduledAt %v not stored in UTC", n.ScheduledAt)
		}
	}
	if first := future[0]; first.IntervalIndex != 2 || first.SegmentIndex != 1 {
		t.Errorf("first notification slot = (%d,%d), want (2,1)", first.IntervalIndex, first.SegmentIndex)
	}
	assertUniqueSlots(t, store, 1)

	calls := store.insertCalls
	if err := svc.Ensure(context.Background(), 1, 10, 0.5); err != nil {
		t.Fatalf("second Ensure() error = %v", err)
	}
	if store.insertCalls != calls {
		t.Errorf("second Ensure() inserted %d rows, want no-op", store.insertCalls-calls)
	}
}

func TestService_Ensure_TopsUpAfterTimePasses(t *testing.T) {
	store := newMemStore()
	seed(store, dailyReminder(1), allDay())
	clk := &clock{now: baseNow}
	svc := newTestService(store, clk)

	if err := svc.Ensure(context.Background(), 1, 10, 0.5); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	later := baseNow.AddDate(0, 0, 3)
	clk.set(later)
	if err := svc.Ensure(context.Background(), 1, 10, 0.5); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	if got := len(futureUnresponded(store, 1, later)); got < 10 {
		t.Errorf("future notifications after top-up = %d, want >= 10", got)
	}
	assertUniqueSlots(t, store, 1)
}

func TestService_Ensure_SkipsInactiveReminders(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Reminder)
	}{
		{name: "muted", mutate: func(r *domain.Reminder) { r.IsMuted = true }},
		{name: "archived", mutate: func(r *domain.Reminder) { r.IsArchived = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			r := dailyReminder(1)
			tt.mutate(r)
			seed(store, r, allDay())
			svc := newTestService(store, &clock{now: baseNow})

			if err := svc.Ensure(context.Background(), 1, 10, 0.5); err != nil {
				t.Fatalf("Ensure() error = %v", err)
			}
			if store.insertCalls != 0 {
				t.Errorf("InsertNotification called %d times, want 0", store.insertCalls)
			}
		})
	}
}

func TestService_Ensure_ReminderNotFound(t *testing.T) {
	svc := newTestService(newMemStore(), &clock{now: baseNow})

	if err := svc.Ensure(context.Background(), 99, 10, 0.5); err != nil {
		t.Errorf("Ensure() error = %v, want nil for missing reminder", err)
	}
}

func TestService_Ensure_CompletedTask(t *testing.T) {
	store := newMemStore()
	r := dailyReminder(1)
	r.IsRecurring = false
	seed(store, r, allDay())
	clk := &clock{now: baseNow}
	svc := newTestService(store, clk)

	if err := svc.Ensure(context.Background(), 1, 3, 0.5); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	first := futureUnresponded(store, 1, baseNow)[0]
	store.respond(first.ID, domain.ResponseDone, baseNow)
	if _, err := store.DeleteFutureUnrespondedNotifications(context.Background(), 1, baseNow); err != nil {
		t.Fatal(err)
	}

	calls := store.insertCalls
	if err := svc.Ensure(context.Background(), 1, 3, 0.5); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if store.insertCalls != calls {
		t.Errorf("completed task regenerated %d notifications", store.insertCalls-calls)
	}
}

func TestService_Ensure_ExhaustedWithoutAvailability(t *testing.T) {
	store := newMemStore()
	seed(store, dailyReminder(1), &domain.Schedule{ID: 1, Days: 0})
	svc := newTestService(store, &clock{now: baseNow})

	err := svc.Ensure(context.Background(), 1, 10, 0.5)

	if !errors.Is(err, domain.ErrHorizonExhausted) {
		t.Fatalf("Ensure() error = %v, want ErrHorizonExhausted", err)
	}
	if store.insertCalls != 0 {
		t.Errorf("InsertNotification called %d times, want 0", store.insertCalls)
	}
}

func TestService_Ensure_NoSchedules(t *testing.T) {
	store := newMemStore()
	seed(store, dailyReminder(1))
	svc := newTestService(store, &clock{now: baseNow}, WithMaxIterations(25))

	if err := svc.Ensure(context.Background(), 1, 10, 0.5); !errors.Is(err, domain.ErrHorizonExhausted) {
		t.Errorf("Ensure() error = %v, want ErrHorizonExhausted", err)
	}
}

func TestService_Ensure_NoAvailabilityBeforeEndDate(t *testing.T) {
	tests := []struct {
		name      string
		schedules []*domain.Schedule
	}{
		{name: "no enabled days", schedules: []*domain.Schedule{{ID: 1, Days: 0}}},
		{name: "no schedules"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			r := dailyReminder(1)
			end := baseNow.AddDate(0, 0, 30)
			r.EndDate = &end
			seed(store, r, tt.schedules...)
			svc := newTestService(store, &clock{now: baseNow})

			err := svc.Ensure(context.Background(), 1, 10, 0.5)

			if !errors.Is(err, domain.ErrHorizonExhausted) {
				t.Errorf("Ensure() error = %v, want ErrHorizonExhausted", err)
			}
		})
	}
}

func TestService_Ensure_StopsAtEndDate(t *testing.T) {
	store := newMemStore()
	r := dailyReminder(1)
	end := baseNow.AddDate(0, 0, 2)
	r.EndDate = &end
	seed(store, r, allDay())
	svc := newTestService(store, &clock{now: baseNow})

	if err := svc.Ensure(context.Background(), 1, 10, 0.5); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	got := futureUnresponded(store, 1, baseNow)
	// Mar 3 18:00, Mar 4 06:00 and 18:00, Mar 5 06:00.
	if len(got) != 4 {
		t.Errorf("notifications = %d, want 4", len(got))
	}
	for _, n := range got {
		if n.ScheduledAt.After(end) {
			t.Errorf("notification at %v after end date %v", n.ScheduledAt, end)
		}
	}
}

func TestService_Ensure_RespectsStartDate(t *testing.T) {
	store := newMemStore()
	r := dailyReminder(1)
	r.StartDate = baseNow.AddDate(0, 0, 5).Add(9 * time.Hour)
	seed(store, r, allDay())
	svc := newTestService(store, &clock{now: baseNow})

	if err := svc.Ensure(context.Background(), 1, 4, 0.5); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	for _, n := range store.all(1) {
		if n.ScheduledAt.Before(r.StartDate) {
			t.Errorf("notification at %v precedes start date %v", n.ScheduledAt, r.StartDate)
		}
	}
}

func TestService_Ensure_ConcurrentCallsKeepSlotsUnique(t *testing.T) {
	store := newMemStore()
	seed(store, dailyReminder(1), allDay())
	svc := newTestService(store, &clock{now: baseNow})

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.Ensure(context.Background(), 1, 10, 0.5)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("Ensure() error = %v", err)
		}
	}
	assertUniqueSlots(t, store, 1)
	if got := len(futureUnresponded(store, 1, baseNow)); got < 10 {
		t.Errorf("future notifications = %d, want >= 10", got)
	}
}

func TestService_Ensure_SharedRunIgnoresCallerCancellation(t *testing.T) {
	store := newMemStore()
	seed(store, dailyReminder(1), allDay())
	svc := newTestService(store, &clock{now: baseNow})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.Ensure(ctx, 1, 4, 0.5); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if got := len(futureUnresponded(store, 1, baseNow)); got < 4 {
		t.Errorf("future notifications = %d, want >= 4", got)
	}
}

func TestService_Reanchor_StartDateMovedLater(t *testing.T) {
	store := newMemStore()
	r := dailyReminder(1)
	r.OccurrencesPerInterval = 1
	r.StartDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	seed(store, r, allDay())

	// Answered daily from Jan 1 through Mar 3.
	for i := 0; i <= 61; i++ {
		n := &domain.Notification{
			ReminderID:    1,
			ScheduledAt:   r.StartDate.AddDate(0, 0, i).Add(12 * time.Hour),
			IntervalIndex: i,
		}
		if err := store.InsertNotification(context.Background(), n); err != nil {
			t.Fatalf("seed notification %d: %v", i, err)
		}
		store.respond(n.ID, domain.ResponseDone, n.ScheduledAt)
	}

	now := time.Date(2025, time.March, 4, 8, 0, 0, 0, time.UTC)
	clk := &clock{now: now}
	svc := newTestService(store, clk)

	edited := *r
	edited.StartDate = time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	if err := svc.Reanchor(context.Background(), &edited); err != nil {
		t.Fatalf("Reanchor() error = %v", err)
	}
	if edited.IndexOffset != 31 {
		t.Errorf("IndexOffset = %d, want 31", edited.IndexOffset)
	}
	store.reminders[1] = &edited

	if err := svc.Recalc(context.Background(), 1, 3, 0.5); err != nil {
		t.Fatalf("Recalc() error = %v", err)
	}

	future := futureUnresponded(store, 1, now)
	if len(future) != 3 {
		t.Fatalf("future notifications = %d, want 3", len(future))
	}
	if want := time.Date(2025, time.March, 4, 12, 0, 0, 0, time.UTC); !future[0].ScheduledAt.Equal(want) {
		t.Errorf("first notification at %v, want %v", future[0].ScheduledAt, want)
	}
	if future[0].IntervalIndex != 62 {
		t.Errorf("first stored interval = %d, want 62", future[0].IntervalIndex)
	}

	clk.set(time.Date(2025, time.March, 5, 13, 0, 0, 0, time.UTC))
	if err := svc.Ensure(context.Background(), 1, 3, 0.5); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	future = futureUnresponded(store, 1, clk.Now())
	for i, n := range future {
		want := time.Date(2025, time.March, 6+i, 12, 0, 0, 0, time.UTC)
		if !n.ScheduledAt.Equal(want) {
			t.Errorf("notification %d at %v, want %v", i, n.ScheduledAt, want)
		}
	}
	if len(future) != 3 {
		t.Errorf("future notifications = %d, want 3", len(future))
	}
	assertUniqueSlots(t, store, 1)
}

func TestService_Reanchor_NoHistory(t *testing.T) {
	store := newMemStore()
	r := dailyReminder(1)
	seed(store, r, allDay())
	svc := newTestService(store, &clock{now: baseNow})

	if err := svc.Reanchor(context.Background(), r); err != nil {
		t.Fatalf("Reanchor() error = %v", err)
	}
	if r.IndexOffset != 0 {
		t.Errorf("IndexOffset = %d, want 0", r.IndexOffset)
	}
}

func TestService_Recalc_ReplacesFutureAndKeepsHistory(t *testing.T) {
	store := newMemStore()
	seed(store, dailyReminder(1), allDay())
	clk := &clock{now: baseNow}
	svc := newTestService(store, clk)

	if err := svc.Ensure(context.Background(), 1, 10, 0.5); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	before := make(map[int64]bool)
	for _, n := range store.all(1) {
		before[n.ID] = true
	}

	responded := store.all(1)[0]
	later := baseNow.AddDate(0, 0, 2)
	clk.set(later)
	store.respond(responded.ID, domain.ResponseDone, later)

	if err := svc.Recalc(context.Background(), 1, 10, 0.5); err != nil {
		t.Fatalf("Recalc() error = %v", err)
	}

	if n, err := store.GetNotification(context.Background(), responded.ID); err != nil || !n.IsResponded() {
		t.Errorf("responded notification lost after recalc: %v, %v", n, err)
	}
	future := futureUnresponded(store, 1, later)
	if len(future) < 10 {
		t.Errorf("future notifications after recalc = %d, want >= 10", len(future))
	}
	for _, n := range future {
		if before[n.ID] {
			t.Errorf("future notification %d survived recalc", n.ID)
		}
	}
	assertUniqueSlots(t, store, 1)
}

func TestService_Recalc_MutedOnlyClears(t *testing.T) {
	store := newMemStore()
	seed(store, dailyReminder(1), allDay())
	clk := &clock{now: baseNow}
	svc := newTestService(store, clk)

	if err := svc.Ensure(context.Background(), 1, 10, 0.5); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	store.reminders[1].IsMuted = true

	if err := svc.Recalc(context.Background(), 1, 10, 0.5); err != nil {
		t.Fatalf("Recalc() error = %v", err)
	}
	if got := len(futureUnresponded(store, 1, baseNow)); got != 0 {
		t.Errorf("muted reminder kept %d future notifications", got)
	}
}

func TestService_Persist_Idempotent(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, &clock{now: baseNow})
	batch := []domain.NotificationTime{
		{ReminderID: 1, ScheduledAt: baseNow.Add(time.Hour), IntervalIndex: 0, SegmentIndex: 0},
		{ReminderID: 1, ScheduledAt: baseNow.Add(2 * time.Hour), IntervalIndex: 0, SegmentIndex: 1},
		{ReminderID: 1, ScheduledAt: baseNow.Add(3 * time.Hour), IntervalIndex: 1, SegmentIndex: 0},
	}

	first, err := svc.Persist(context.Background(), batch)
	if err != nil || first != 3 {
		t.Fatalf("first Persist() = %d, %v; want 3, nil", first, err)
	}
	second, err := svc.Persist(context.Background(), batch)
	if err != nil || second != 0 {
		t.Fatalf("second Persist() = %d, %v; want 0, nil", second, err)
	}
	if got := len(store.all(1)); got != 3 {
		t.Errorf("stored notifications = %d, want 3", got)
	}
}

func TestService_Persist_PropagatesStorageError(t *testing.T) {
	store := newMemStore()
	store.insertErr = errors.New("database is locked")
	svc := newTestService(store, &clock{now: baseNow})

	_, err := svc.Persist(context.Background(), []domain.NotificationTime{
		{ReminderID: 1, ScheduledAt: baseNow.Add(time.Hour)},
		{ReminderID: 1, ScheduledAt: baseNow.Add(2 * time.Hour), SegmentIndex: 1},
	})

	if err == nil {
		t.Fatal("Persist() error = nil, want storage error")
	}
	if store.insertCalls != 1 {
		t.Errorf("InsertNotification called %d times, want batch to stop after 1", store.insertCalls)
	}
}

func TestService_Validate(t *testing.T) {
	svc := newTestService(newMemStore(), &clock{now: baseNow}, WithMaxIterations(100))

	invalid := dailyReminder(1)
	invalid.IntervalCount = 0

	bounded := func(end time.Time) *domain.Reminder {
		r := dailyReminder(1)
		r.EndDate = &end
		return r
	}

	tests := []struct {
		name      string
		reminder  *domain.Reminder
		schedules []*domain.Schedule
		wantErr   []error
	}{
		{name: "satisfiable", reminder: dailyReminder(1), schedules: []*domain.Schedule{allDay()}},
		{
			name:      "no enabled days",
			reminder:  dailyReminder(1),
			schedules: []*domain.Schedule{{Days: 0}},
			wantErr:   []error{domain.ErrInvalidReminder, domain.ErrHorizonExhausted},
		},
		{
			name:     "no schedules",
			reminder: dailyReminder(1),
			wantErr:  []error{domain.ErrInvalidReminder, domain.ErrHorizonExhausted},
		},
		{
			name:      "end date with no enabled days",
			reminder:  bounded(baseNow.AddDate(0, 0, 30)),
			schedules: []*domain.Schedule{{Days: 0}},
			wantErr:   []error{domain.ErrInvalidReminder, domain.ErrHorizonExhausted},
		},
		{
			name:     "end date with no schedules",
			reminder: bounded(baseNow.AddDate(0, 0, 30)),
			wantErr:  []error{domain.ErrInvalidReminder, domain.ErrHorizonExhausted},
		},
		{
			name:      "end date already passed",
			reminder:  bounded(time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)),
			schedules: []*domain.Schedule{allDay()},
			wantErr:   []error{domain.ErrInvalidReminder, domain.ErrHorizonExhausted},
		},
		{
			name:      "end date with availability",
			reminder:  bounded(baseNow.AddDate(0, 0, 30)),
			schedules: []*domain.Schedule{allDay()},
		},
		{
			name:      "invalid interval count",
			reminder:  invalid,
			schedules: []*domain.Schedule{allDay()},
			wantErr:   []error{domain.ErrInvalidReminder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Validate(tt.reminder, tt.schedules)
			if len(tt.wantErr) == 0 && err != nil {
				t.Fatalf("Validate() error = %v, want nil", err)
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("Validate() error = %v, want %v", err, want)
				}
			}
		})
	}
}

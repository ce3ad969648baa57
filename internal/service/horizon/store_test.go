package horizon

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

type slotKey struct {
	reminderID int64
	interval   int
	segment    int
}

// memStore is an in-memory implementation of the repositories that enforces
// the notification slot uniqueness constraint.
type memStore struct {
	mu            sync.Mutex
	reminders     map[int64]*domain.Reminder
	schedules     map[int64][]*domain.Schedule
	notifications map[int64]*domain.Notification
	slots         map[slotKey]int64
	nextID        int64
	insertCalls   int
	insertErr     error
}

func newMemStore() *memStore {
	return &memStore{
		reminders:     make(map[int64]*domain.Reminder),
		schedules:     make(map[int64][]*domain.Schedule),
		notifications: make(map[int64]*domain.Notification),
		slots:         make(map[slotKey]int64),
	}
}

func (m *memStore) GetReminder(ctx context.Context, id int64) (*domain.Reminder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reminders[id]
	if !ok {
		return nil, domain.ErrReminderNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memStore) GetActiveReminders(_ context.Context) ([]*domain.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Reminder
	for _, r := range m.reminders {
		if !r.IsArchived {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStore) CreateReminder(_ context.Context, r *domain.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.ID = m.nextID
	cp := *r
	m.reminders[r.ID] = &cp
	return nil
}

func (m *memStore) UpdateReminder(_ context.Context, r *domain.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.reminders[r.ID] = &cp
	return nil
}

func (m *memStore) SetReminderMuted(_ context.Context, id int64, muted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reminders[id].IsMuted = muted
	return nil
}

func (m *memStore) ArchiveReminder(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reminders[id].IsArchived = true
	return nil
}

func (m *memStore) GetSchedulesForReminder(_ context.Context, reminderID int64) ([]*domain.Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.schedules[reminderID], nil
}

func (m *memStore) GetUnrespondedNotifications(_ context.Context, reminderID int64) ([]*domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Notification
	for _, n := range m.notifications {
		if n.ReminderID == reminderID && !n.IsResponded() {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

func (m *memStore) GetMaxIntervalIndex(_ context.Context, reminderID int64) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	maxIndex, ok := 0, false
	for _, n := range m.notifications {
		if n.ReminderID == reminderID && (!ok || n.IntervalIndex > maxIndex) {
			maxIndex, ok = n.IntervalIndex, true
		}
	}
	return maxIndex, ok, nil
}

func (m *memStore) CountNotificationsWithStatus(_ context.Context, reminderID int64, status domain.ResponseStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, n := range m.notifications {
		if n.ReminderID == reminderID && n.ResponseStatus != nil && *n.ResponseStatus == status {
			count++
		}
	}
	return count, nil
}

func (m *memStore) InsertNotification(_ context.Context, n *domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls++
	if m.insertErr != nil {
		return m.insertErr
	}
	key := slotKey{n.ReminderID, n.IntervalIndex, n.SegmentIndex}
	if _, exists := m.slots[key]; exists {
		return domain.ErrConflict
	}
	m.nextID++
	n.ID = m.nextID
	cp := *n
	m.notifications[n.ID] = &cp
	m.slots[key] = n.ID
	return nil
}

func (m *memStore) DeleteFutureUnrespondedNotifications(_ context.Context, reminderID int64, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	for id, n := range m.notifications {
		if n.ReminderID == reminderID && !n.IsResponded() && n.ScheduledAt.After(cutoff) {
			delete(m.notifications, id)
			delete(m.slots, slotKey{n.ReminderID, n.IntervalIndex, n.SegmentIndex})
			deleted++
		}
	}
	return deleted, nil
}

func (m *memStore) respond(id int64, status domain.ResponseStatus, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications[id].ResponseStatus = &status
	m.notifications[id].ResponseAt = &at
}

func (m *memStore) all(reminderID int64) []*domain.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Notification
	for _, n := range m.notifications {
		if n.ReminderID == reminderID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out
}

func (m *memStore) GetSchedule(_ context.Context, id int64) (*domain.Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, list := range m.schedules {
		for _, sc := range list {
			if sc.ID == id {
				return sc, nil
			}
		}
	}
	return nil, domain.ErrScheduleNotFound
}

func (m *memStore) GetReminderIDsForSchedule(_ context.Context, scheduleID int64) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []int64
	for reminderID, list := range m.schedules {
		for _, sc := range list {
			if sc.ID == scheduleID {
				ids = append(ids, reminderID)
			}
		}
	}
	return ids, nil
}

func (m *memStore) CreateSchedule(context.Context, *domain.Schedule) error { return nil }

func (m *memStore) UpdateSchedule(context.Context, *domain.Schedule) error { return nil }

func (m *memStore) SetReminderSchedules(context.Context, int64, []int64) error { return nil }

func (m *memStore) GetNotification(_ context.Context, id int64) (*domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notifications[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	return n, nil
}

func (m *memStore) GetNextNotification(context.Context, int64, time.Time) (*domain.Notification, error) {
	return nil, domain.ErrNotificationNotFound
}

func (m *memStore) GetUpcomingNotifications(context.Context, time.Time, int) ([]*domain.UpcomingNotification, error) {
	return nil, nil
}

func (m *memStore) UpdateNotification(context.Context, int64, domain.NotificationPatch) error {
	return nil
}

func (m *memStore) MarkPastDueNoResponse(context.Context, int64, time.Time) (int64, error) {
	return 0, nil
}

var (
	_ domain.ReminderRepository     = (*memStore)(nil)
	_ domain.ScheduleRepository     = (*memStore)(nil)
	_ domain.NotificationRepository = (*memStore)(nil)
)

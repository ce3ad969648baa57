package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/infra/taskqueue"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/observability/tracing"
)

// DefaultRegistryKey is the Redis hash mapping task IDs to registered alarms.
const DefaultRegistryKey = "scheduler:alarms"

var ErrInvalidAlarm = errors.New("invalid alarm request")

type alarmRecord struct {
	NotificationID int64     `json:"notification_id"`
	ReminderID     int64     `json:"reminder_id"`
	TaskName       string    `json:"task_name"`
	When           time.Time `json:"when"`
	RegisteredAt   time.Time `json:"registered_at"`
}

// AlarmScheduler registers alarms as delayed tasks and tracks them in a
// Redis hash so the whole set can be listed and cancelled. With a nil queue
// it only maintains the registry.
type AlarmScheduler struct {
	client      *redis.Client
	queue       taskqueue.TaskQueue
	registryKey string
	newTaskID   func(notificationID int64) string
	now         func() time.Time
}

var _ domain.AlarmScheduler = (*AlarmScheduler)(nil)

type Option func(*AlarmScheduler)

// WithRegistryKey overrides the Redis hash that tracks registered alarms.
func WithRegistryKey(key string) Option {
	return func(s *AlarmScheduler) {
		if key != "" {
			s.registryKey = key
		}
	}
}

func NewAlarmScheduler(client *redis.Client, queue taskqueue.TaskQueue, opts ...Option) *AlarmScheduler {
	s := &AlarmScheduler{
		client:      client,
		queue:       queue,
		registryKey: DefaultRegistryKey,
		newTaskID: func(notificationID int64) string {
			return fmt.Sprintf("n%d-%s", notificationID, uuid.NewString())
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AlarmScheduler) ScheduleAt(ctx context.Context, req domain.AlarmRequest) error {
	if req.NotificationID <= 0 || req.When.IsZero() {
		return fmt.Errorf("%w: notification %d at %v", ErrInvalidAlarm, req.NotificationID, req.When)
	}

	taskID := s.newTaskID(req.NotificationID)
	taskName := taskID

	if s.queue != nil {
		resp, err := s.queue.RegisterNotification(ctx, &taskqueue.NotificationTask{
			TaskID:         taskID,
			ScheduleAt:     req.When,
			NotificationID: req.NotificationID,
			ReminderID:     req.ReminderID,
			Title:          req.Title,
			Body:           req.Body,
			Category:       req.Category,
			ScheduledAt:    req.When.UTC(),
			Payload:        req.Payload,
		})
		if err != nil {
			return fmt.Errorf("register alarm for notification %d: %w", req.NotificationID, err)
		}
		if resp != nil && resp.Name != "" {
			taskName = resp.Name
		}
	}

	data, err := json.Marshal(alarmRecord{
		NotificationID: req.NotificationID,
		ReminderID:     req.ReminderID,
		TaskName:       taskName,
		When:           req.When.UTC(),
		RegisteredAt:   s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal alarm record: %w", err)
	}

	ctx, span := tracing.StartRedisOperationSpan(ctx, "hset", s.registryKey)
	defer span.End()

	if err := s.client.HSet(ctx, s.registryKey, taskID, data).Err(); err != nil {
		tracing.SetStatusFromError(span, err)
		return fmt.Errorf("track alarm %s: %w", taskID, err)
	}

	slog.DebugContext(ctx, "alarm scheduled",
		slog.String("task_id", taskID),
		slog.Int64("notification_id", req.NotificationID),
		slog.Time("when", req.When),
	)
	return nil
}

// CancelAllScheduled deletes every tracked task. Entries whose task could not
// be deleted stay in the registry for the next attempt.
func (s *AlarmScheduler) CancelAllScheduled(ctx context.Context) error {
	entries, err := s.entries(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	var errs []error
	cancelled := make([]string, 0, len(entries))
	for taskID := range entries {
		if s.queue != nil {
			if err := s.queue.DeleteTask(ctx, taskID); err != nil {
				errs = append(errs, fmt.Errorf("delete task %s: %w", taskID, err))
				continue
			}
		}
		cancelled = append(cancelled, taskID)
	}

	if len(cancelled) > 0 {
		ctx, span := tracing.StartRedisOperationSpan(ctx, "hdel", s.registryKey)
		err := s.client.HDel(ctx, s.registryKey, cancelled...).Err()
		tracing.SetStatusFromError(span, err)
		span.End()
		if err != nil {
			errs = append(errs, fmt.Errorf("untrack cancelled alarms: %w", err))
		}
	}

	slog.InfoContext(ctx, "cancelled scheduled alarms",
		slog.Int("cancelled", len(cancelled)),
		slog.Int("failed", len(entries)-len(cancelled)),
	)
	return errors.Join(errs...)
}

func (s *AlarmScheduler) ListScheduled(ctx context.Context) ([]domain.ScheduledAlarm, error) {
	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}

	alarms := make([]domain.ScheduledAlarm, 0, len(entries))
	for _, rec := range entries {
		if rec.NotificationID == 0 {
			continue
		}
		alarms = append(alarms, domain.ScheduledAlarm{
			NotificationID: rec.NotificationID,
			TaskName:       rec.TaskName,
			When:           rec.When,
		})
	}
	sort.Slice(alarms, func(i, j int) bool {
		if alarms[i].When.Equal(alarms[j].When) {
			return alarms[i].NotificationID < alarms[j].NotificationID
		}
		return alarms[i].When.Before(alarms[j].When)
	})
	return alarms, nil
}

func (s *AlarmScheduler) entries(ctx context.Context) (map[string]alarmRecord, error) {
	ctx, span := tracing.StartRedisOperationSpan(ctx, "hgetall", s.registryKey)
	defer span.End()

	raw, err := s.client.HGetAll(ctx, s.registryKey).Result()
	if err != nil {
		tracing.SetStatusFromError(span, err)
		return nil, fmt.Errorf("read alarm registry: %w", err)
	}

	entries := make(map[string]alarmRecord, len(raw))
	for taskID, value := range raw {
		var rec alarmRecord
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			slog.WarnContext(ctx, "unreadable alarm record",
				slog.String("task_id", taskID),
				slog.String("error", err.Error()),
			)
			// Kept with its task name so cancel-all still clears it.
			rec = alarmRecord{TaskName: taskID}
		}
		entries[taskID] = rec
	}
	return entries, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

func (s *Store) GetNotification(ctx context.Context, id int64) (*domain.Notification, error) {
	var rec notificationRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, translate(err, domain.ErrNotificationNotFound)
	}
	return rec.toDomain(), nil
}

func (s *Store) GetUnrespondedNotifications(ctx context.Context, reminderID int64) ([]*domain.Notification, error) {
	var recs []notificationRecord
	if err := s.db.WithContext(ctx).
		Where("reminder_id = ? AND response_status IS NULL", reminderID).
		Order("scheduled_at, id").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list unresponded notifications: %w", err)
	}
	return toNotifications(recs), nil
}

// GetNextNotification returns the earliest unresponded notification scheduled
// after the given instant.
func (s *Store) GetNextNotification(ctx context.Context, reminderID int64, after time.Time) (*domain.Notification, error) {
	var rec notificationRecord
	if err := s.db.WithContext(ctx).
		Where("reminder_id = ? AND response_status IS NULL AND scheduled_at > ?", reminderID, after.UTC()).
		Order("scheduled_at, id").
		First(&rec).Error; err != nil {
		return nil, translate(err, domain.ErrNotificationNotFound)
	}
	return rec.toDomain(), nil
}

func (s *Store) GetMaxIntervalIndex(ctx context.Context, reminderID int64) (int, bool, error) {
	var result struct {
		MaxIndex *int
	}
	if err := s.db.WithContext(ctx).
		Model(&notificationRecord{}).
		Select("MAX(interval_index) AS max_index").
		Where("reminder_id = ?", reminderID).
		Scan(&result).Error; err != nil {
		return 0, false, fmt.Errorf("failed to read max interval index: %w", err)
	}
	if result.MaxIndex == nil {
		return 0, false, nil
	}
	return *result.MaxIndex, true, nil
}

func (s *Store) CountNotificationsWithStatus(ctx context.Context, reminderID int64, status domain.ResponseStatus) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&notificationRecord{}).
		Where("reminder_id = ? AND response_status = ?", reminderID, status.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}

type upcomingRow struct {
	notificationRecord
	Title       string
	Description string
	IsRecurring bool
}

// GetUpcomingNotifications lists unresponded notifications after the given
// instant whose reminder is neither archived nor muted, soonest first.
func (s *Store) GetUpcomingNotifications(ctx context.Context, after time.Time, limit int) ([]*domain.UpcomingNotification, error) {
	q := s.db.WithContext(ctx).
		Model(&notificationRecord{}).
		Select("notifications.*, reminders.title, reminders.description, reminders.is_recurring").
		Joins("JOIN reminders ON reminders.id = notifications.reminder_id").
		Where("reminders.is_archived = ? AND reminders.is_muted = ?", false, false).
		Where("notifications.response_status IS NULL AND notifications.scheduled_at > ?", after.UTC()).
		Order("notifications.scheduled_at, notifications.id")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []upcomingRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list upcoming notifications: %w", err)
	}

	upcoming := make([]*domain.UpcomingNotification, 0, len(rows))
	for i := range rows {
		upcoming = append(upcoming, &domain.UpcomingNotification{
			Notification: *rows[i].toDomain(),
			Title:        rows[i].Title,
			Description:  rows[i].Description,
			IsRecurring:  rows[i].IsRecurring,
		})
	}
	return upcoming, nil
}

func (s *Store) InsertNotification(ctx context.Context, notification *domain.Notification) error {
	rec := toNotificationRecord(notification)
	rec.ID = 0
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return translate(err, domain.ErrReminderNotFound)
	}
	notification.ID = rec.ID
	notification.CreatedAt = rec.CreatedAt
	notification.UpdatedAt = rec.UpdatedAt
	return nil
}

func (s *Store) UpdateNotification(ctx context.Context, id int64, patch domain.NotificationPatch) error {
	updates := make(map[string]any, 3)
	if patch.ScheduledAt != nil {
		updates["scheduled_at"] = patch.ScheduledAt.UTC()
	}
	if patch.ResponseStatus != nil {
		updates["response_status"] = patch.ResponseStatus.String()
	}
	if patch.ResponseAt != nil {
		updates["response_at"] = patch.ResponseAt.UTC()
	}
	if len(updates) == 0 {
		return nil
	}

	res := s.db.WithContext(ctx).
		Model(&notificationRecord{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return translate(res.Error, domain.ErrNotificationNotFound)
	}
	if res.RowsAffected == 0 {
		return s.mustExist(ctx, &notificationRecord{}, id, domain.ErrNotificationNotFound)
	}
	return nil
}

// DeleteFutureUnrespondedNotifications removes unresponded notifications
// scheduled strictly after cutoff. Responded history is kept.
func (s *Store) DeleteFutureUnrespondedNotifications(ctx context.Context, reminderID int64, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("reminder_id = ? AND response_status IS NULL AND scheduled_at > ?", reminderID, cutoff.UTC()).
		Delete(&notificationRecord{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete future notifications: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// MarkPastDueNoResponse stamps no_response on unresponded notifications
// scheduled at or before now.
func (s *Store) MarkPastDueNoResponse(ctx context.Context, reminderID int64, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&notificationRecord{}).
		Where("reminder_id = ? AND response_status IS NULL AND scheduled_at <= ?", reminderID, now.UTC()).
		Updates(map[string]any{
			"response_status": domain.ResponseNoResponse.String(),
			"response_at":     now.UTC(),
		})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to mark past-due notifications: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func toNotifications(recs []notificationRecord) []*domain.Notification {
	out := make([]*domain.Notification, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].toDomain())
	}
	return out
}

package repository

import (
	"context"
	"fmt"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

func (s *Store) GetReminder(ctx context.Context, id int64) (*domain.Reminder, error) {
	var rec reminderRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, translate(err, domain.ErrReminderNotFound)
	}
	return rec.toDomain(), nil
}

// GetActiveReminders returns every reminder that is not archived, muted ones
// included.
func (s *Store) GetActiveReminders(ctx context.Context) ([]*domain.Reminder, error) {
	var recs []reminderRecord
	if err := s.db.WithContext(ctx).
		Where("is_archived = ?", false).
		Order("id").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list active reminders: %w", err)
	}

	reminders := make([]*domain.Reminder, 0, len(recs))
	for i := range recs {
		reminders = append(reminders, recs[i].toDomain())
	}
	return reminders, nil
}

func (s *Store) CreateReminder(ctx context.Context, reminder *domain.Reminder) error {
	rec := toReminderRecord(reminder)
	rec.ID = 0
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return translate(err, domain.ErrReminderNotFound)
	}
	reminder.ID = rec.ID
	reminder.CreatedAt = rec.CreatedAt
	reminder.UpdatedAt = rec.UpdatedAt
	return nil
}

func (s *Store) UpdateReminder(ctx context.Context, reminder *domain.Reminder) error {
	rec := toReminderRecord(reminder)
	// Select("*") so zero values such as IsRecurring=false are written.
	res := s.db.WithContext(ctx).Model(rec).Select("*").Omit("created_at").Updates(rec)
	if res.Error != nil {
		return translate(res.Error, domain.ErrReminderNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}
	reminder.UpdatedAt = rec.UpdatedAt
	return nil
}

func (s *Store) SetReminderMuted(ctx context.Context, id int64, muted bool) error {
	return s.updateReminderColumn(ctx, id, "is_muted", muted)
}

func (s *Store) ArchiveReminder(ctx context.Context, id int64) error {
	return s.updateReminderColumn(ctx, id, "is_archived", true)
}

func (s *Store) updateReminderColumn(ctx context.Context, id int64, column string, value any) error {
	res := s.db.WithContext(ctx).
		Model(&reminderRecord{}).
		Where("id = ?", id).
		Update(column, value)
	if res.Error != nil {
		return fmt.Errorf("failed to update reminder %s: %w", column, res.Error)
	}
	if res.RowsAffected == 0 {
		return s.mustExist(ctx, &reminderRecord{}, id, domain.ErrReminderNotFound)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

func (s *Store) GetSchedule(ctx context.Context, id int64) (*domain.Schedule, error) {
	var rec scheduleRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, translate(err, domain.ErrScheduleNotFound)
	}
	return rec.toDomain()
}

func (s *Store) GetSchedulesForReminder(ctx context.Context, reminderID int64) ([]*domain.Schedule, error) {
	var recs []scheduleRecord
	if err := s.db.WithContext(ctx).
		Joins("JOIN reminder_schedules ON reminder_schedules.schedule_id = schedules.id").
		Where("reminder_schedules.reminder_id = ?", reminderID).
		Order("schedules.id").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list schedules for reminder: %w", err)
	}

	schedules := make([]*domain.Schedule, 0, len(recs))
	for i := range recs {
		sc, err := recs[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("schedule %d: %w", recs[i].ID, err)
		}
		schedules = append(schedules, sc)
	}
	return schedules, nil
}

func (s *Store) GetReminderIDsForSchedule(ctx context.Context, scheduleID int64) ([]int64, error) {
	var ids []int64
	if err := s.db.WithContext(ctx).
		Model(&reminderScheduleRecord{}).
		Where("schedule_id = ?", scheduleID).
		Order("reminder_id").
		Pluck("reminder_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list reminders for schedule: %w", err)
	}
	return ids, nil
}

func (s *Store) CreateSchedule(ctx context.Context, schedule *domain.Schedule) error {
	rec := toScheduleRecord(schedule)
	rec.ID = 0
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return translate(err, domain.ErrScheduleNotFound)
	}
	schedule.ID = rec.ID
	return nil
}

func (s *Store) UpdateSchedule(ctx context.Context, schedule *domain.Schedule) error {
	rec := toScheduleRecord(schedule)
	res := s.db.WithContext(ctx).Model(rec).Select("*").Updates(rec)
	if res.Error != nil {
		return translate(res.Error, domain.ErrScheduleNotFound)
	}
	if res.RowsAffected == 0 {
		return s.mustExist(ctx, &scheduleRecord{}, schedule.ID, domain.ErrScheduleNotFound)
	}
	return nil
}

// SetReminderSchedules replaces the reminder's schedule attachments.
func (s *Store) SetReminderSchedules(ctx context.Context, reminderID int64, scheduleIDs []int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reminder_id = ?", reminderID).
			Delete(&reminderScheduleRecord{}).Error; err != nil {
			return fmt.Errorf("failed to detach schedules: %w", err)
		}
		if len(scheduleIDs) == 0 {
			return nil
		}

		var found int64
		if err := tx.Model(&scheduleRecord{}).
			Where("id IN ?", scheduleIDs).
			Count(&found).Error; err != nil {
			return fmt.Errorf("failed to look up schedules: %w", err)
		}

		links := make([]reminderScheduleRecord, 0, len(scheduleIDs))
		seen := make(map[int64]struct{}, len(scheduleIDs))
		for _, id := range scheduleIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			links = append(links, reminderScheduleRecord{ReminderID: reminderID, ScheduleID: id})
		}
		if found != int64(len(links)) {
			return domain.ErrScheduleNotFound
		}
		if err := tx.Create(&links).Error; err != nil {
			return translate(err, domain.ErrScheduleNotFound)
		}
		return nil
	})
}

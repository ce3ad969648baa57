package repository

import (
	"time"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

type reminderRecord struct {
	ID                     int64      `gorm:"primaryKey;autoIncrement"`
	Title                  string     `gorm:"size:255;not null"`
	Description            string     `gorm:"type:text"`
	IntervalUnit           string     `gorm:"size:16;not null"`
	IntervalCount          int        `gorm:"not null"`
	OccurrencesPerInterval int        `gorm:"not null"`
	IsRecurring            bool       `gorm:"not null;default:true"`
	IsMuted                bool       `gorm:"not null;default:false;index"`
	IsArchived             bool       `gorm:"not null;default:false;index"`
	TrackStreak            bool       `gorm:"not null;default:false"`
	StartDate              time.Time  `gorm:"not null"`
	EndDate                *time.Time
	IndexOffset            int        `gorm:"not null;default:0"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (reminderRecord) TableName() string { return "reminders" }

type scheduleRecord struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Label       string `gorm:"size:255"`
	IsSunday    bool   `gorm:"not null"`
	IsMonday    bool   `gorm:"not null"`
	IsTuesday   bool   `gorm:"not null"`
	IsWednesday bool   `gorm:"not null"`
	IsThursday  bool   `gorm:"not null"`
	IsFriday    bool   `gorm:"not null"`
	IsSaturday  bool   `gorm:"not null"`
	StartTime   string `gorm:"size:5;not null"`
	EndTime     string `gorm:"size:5;not null"`
}

func (scheduleRecord) TableName() string { return "schedules" }

type reminderScheduleRecord struct {
	ReminderID int64 `gorm:"primaryKey;autoIncrement:false"`
	ScheduleID int64 `gorm:"primaryKey;autoIncrement:false;index"`
}

func (reminderScheduleRecord) TableName() string { return "reminder_schedules" }

type notificationRecord struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	ReminderID     int64     `gorm:"not null;uniqueIndex:idx_notification_slot,priority:1;index:idx_notification_reminder_time,priority:1"`
	ScheduledAt    time.Time `gorm:"not null;index;index:idx_notification_reminder_time,priority:2"`
	IntervalIndex  int       `gorm:"not null;uniqueIndex:idx_notification_slot,priority:2"`
	SegmentIndex   int       `gorm:"not null;uniqueIndex:idx_notification_slot,priority:3"`
	ResponseStatus *string   `gorm:"size:16"`
	ResponseAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (notificationRecord) TableName() string { return "notifications" }

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toReminderRecord(r *domain.Reminder) *reminderRecord {
	return &reminderRecord{
		ID:                     r.ID,
		Title:                  r.Title,
		Description:            r.Description,
		IntervalUnit:           r.IntervalUnit.String(),
		IntervalCount:          r.IntervalCount,
		OccurrencesPerInterval: r.OccurrencesPerInterval,
		IsRecurring:            r.IsRecurring,
		IsMuted:                r.IsMuted,
		IsArchived:             r.IsArchived,
		TrackStreak:            r.TrackStreak,
		StartDate:              r.StartDate.UTC(),
		EndDate:                utcPtr(r.EndDate),
		IndexOffset:            r.IndexOffset,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}
}

func (rec *reminderRecord) toDomain() *domain.Reminder {
	return &domain.Reminder{
		ID:                     rec.ID,
		Title:                  rec.Title,
		Description:            rec.Description,
		IntervalUnit:           domain.IntervalUnit(rec.IntervalUnit),
		IntervalCount:          rec.IntervalCount,
		OccurrencesPerInterval: rec.OccurrencesPerInterval,
		IsRecurring:            rec.IsRecurring,
		IsMuted:                rec.IsMuted,
		IsArchived:             rec.IsArchived,
		TrackStreak:            rec.TrackStreak,
		StartDate:              rec.StartDate.UTC(),
		EndDate:                utcPtr(rec.EndDate),
		IndexOffset:            rec.IndexOffset,
		CreatedAt:              rec.CreatedAt,
		UpdatedAt:              rec.UpdatedAt,
	}
}

func toScheduleRecord(s *domain.Schedule) *scheduleRecord {
	return &scheduleRecord{
		ID:          s.ID,
		Label:       s.Label,
		IsSunday:    s.Days.Has(time.Sunday),
		IsMonday:    s.Days.Has(time.Monday),
		IsTuesday:   s.Days.Has(time.Tuesday),
		IsWednesday: s.Days.Has(time.Wednesday),
		IsThursday:  s.Days.Has(time.Thursday),
		IsFriday:    s.Days.Has(time.Friday),
		IsSaturday:  s.Days.Has(time.Saturday),
		StartTime:   s.StartTime.String(),
		EndTime:     s.EndTime.String(),
	}
}

func (rec *scheduleRecord) toDomain() (*domain.Schedule, error) {
	start, err := domain.ParseTimeOfDay(rec.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseTimeOfDay(rec.EndTime)
	if err != nil {
		return nil, err
	}

	var days domain.DayMask
	for day, set := range [7]bool{
		rec.IsSunday, rec.IsMonday, rec.IsTuesday, rec.IsWednesday,
		rec.IsThursday, rec.IsFriday, rec.IsSaturday,
	} {
		if set {
			days = days.With(time.Weekday(day))
		}
	}

	return &domain.Schedule{
		ID:        rec.ID,
		Label:     rec.Label,
		Days:      days,
		StartTime: start,
		EndTime:   end,
	}, nil
}

func toNotificationRecord(n *domain.Notification) *notificationRecord {
	rec := &notificationRecord{
		ID:            n.ID,
		ReminderID:    n.ReminderID,
		ScheduledAt:   n.ScheduledAt.UTC(),
		IntervalIndex: n.IntervalIndex,
		SegmentIndex:  n.SegmentIndex,
		ResponseAt:    utcPtr(n.ResponseAt),
	}
	if n.ResponseStatus != nil {
		status := n.ResponseStatus.String()
		rec.ResponseStatus = &status
	}
	return rec
}

func (rec *notificationRecord) toDomain() *domain.Notification {
	n := &domain.Notification{
		ID:            rec.ID,
		ReminderID:    rec.ReminderID,
		ScheduledAt:   rec.ScheduledAt.UTC(),
		IntervalIndex: rec.IntervalIndex,
		SegmentIndex:  rec.SegmentIndex,
		ResponseAt:    utcPtr(rec.ResponseAt),
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
	if rec.ResponseStatus != nil {
		status := domain.ResponseStatus(*rec.ResponseStatus)
		n.ResponseStatus = &status
	}
	return n
}

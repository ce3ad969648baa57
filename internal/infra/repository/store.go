package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/config"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

// Store is the relational store for reminders, schedules and notifications.
// All instants are written in UTC.
type Store struct {
	db *gorm.DB
}

var (
	_ domain.ReminderRepository     = (*Store)(nil)
	_ domain.ScheduleRepository     = (*Store)(nil)
	_ domain.NotificationRepository = (*Store)(nil)
)

// Open connects to the configured database and migrates the schema. MySQL
// DSNs must include parseTime=true.
func Open(driver, dsn string) (*Store, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	case config.DriverMySQL:
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newSlogAdapter(defaultSlowQueryThreshold),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	return New(db)
}

// New wraps an open gorm connection and migrates the schema.
func New(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, ErrStoreNotOpen
	}
	if err := db.AutoMigrate(
		&reminderRecord{},
		&scheduleRecord{},
		&reminderScheduleRecord{},
		&notificationRecord{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	slog.Info("database schema migrated",
		slog.String("dialect", db.Dialector.Name()),
	)
	return &Store{db: db}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// mustExist disambiguates a zero-row update: MySQL reports only changed rows.
func (s *Store) mustExist(ctx context.Context, model any, id int64, notFound error) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFound
	}
	return nil
}

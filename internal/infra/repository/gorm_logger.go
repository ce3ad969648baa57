package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// slogAdapter routes gorm logging through slog. Queries log at debug, slow
// queries and unexpected errors at warn.
type slogAdapter struct {
	slowThreshold time.Duration
}

func newSlogAdapter(slowThreshold time.Duration) *slogAdapter {
	return &slogAdapter{slowThreshold: slowThreshold}
}

func (a *slogAdapter) LogMode(_ gormlogger.LogLevel) gormlogger.Interface {
	return a
}

func (a *slogAdapter) Info(ctx context.Context, msg string, data ...any) {
	slog.DebugContext(ctx, fmt.Sprintf(msg, data...))
}

func (a *slogAdapter) Warn(ctx context.Context, msg string, data ...any) {
	slog.WarnContext(ctx, fmt.Sprintf(msg, data...))
}

func (a *slogAdapter) Error(ctx context.Context, msg string, data ...any) {
	slog.ErrorContext(ctx, fmt.Sprintf(msg, data...))
}

func (a *slogAdapter) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, gorm.ErrDuplicatedKey):
		slog.WarnContext(ctx, "query error",
			slog.String("sql", sql),
			slog.Int64("rows_affected", rows),
			slog.Int64("duration_ms", elapsed.Milliseconds()),
			slog.String("error", err.Error()),
		)
	case a.slowThreshold > 0 && elapsed > a.slowThreshold:
		slog.WarnContext(ctx, "slow query",
			slog.String("sql", sql),
			slog.Int64("rows_affected", rows),
			slog.Int64("duration_ms", elapsed.Milliseconds()),
			slog.Duration("threshold", a.slowThreshold),
		)
	default:
		slog.DebugContext(ctx, "sql query",
			slog.String("sql", sql),
			slog.Int64("rows_affected", rows),
			slog.Int64("duration_ms", elapsed.Milliseconds()),
		)
	}
}

package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "nutriplan/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const planQuerySlowThreshold = 200 * time.Millisecond

// planQueryLogger routes GORM output to the request logger so plan
// statements carry the request_id of the call that issued them.
type planQueryLogger struct {
	fallback *slog.Logger
	level    logger.LogLevel
	slow     time.Duration
}

// newGormSlogLogger reports failed and slow plan statements; debug adds every statement
func newGormSlogLogger(base *slog.Logger, debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &planQueryLogger{fallback: base, level: level, slow: planQuerySlowThreshold}
}

func (l *planQueryLogger) LogMode(level logger.LogLevel) logger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *planQueryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, logger.Info, slog.LevelInfo, "GORM info", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *planQueryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, logger.Warn, slog.LevelWarn, "GORM warn", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *planQueryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, logger.Error, slog.LevelError, "GORM error", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace classifies a finished statement: failure first, then slowness, then plain debug output.
// A FindLatest miss surfaces as gorm.ErrRecordNotFound and is a normal cache miss.
func (l *planQueryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.emit(ctx, logger.Error, slog.LevelError, "GORM query failed", append(attrs, slog.String("error", err.Error()))...)
	case elapsed > l.slow:
		l.emit(ctx, logger.Warn, slog.LevelWarn, "GORM slow query", append(attrs, slog.Duration("slowThreshold", l.slow))...)
	default:
		l.emit(ctx, logger.Info, slog.LevelInfo, "GORM query", attrs...)
	}
}

func (l *planQueryLogger) emit(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, attrs ...slog.Attr) {
	if l.level < threshold {
		return
	}

	deliverycontext.Logger(ctx, l.fallback).LogAttrs(ctx, level, msg, attrs...)
}

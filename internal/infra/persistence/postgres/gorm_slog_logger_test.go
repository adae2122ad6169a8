package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	deliverycontext "nutriplan/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantNot string
	}{
		{name: "error", begin: time.Now(), err: errors.New("boom"), want: "GORM query failed"},
		{name: "record not found ignored", begin: time.Now(), err: gorm.ErrRecordNotFound, wantNot: "GORM"},
		{name: "slow", begin: time.Now().Add(-time.Second), want: "GORM slow query"},
		{name: "fast quiet", begin: time.Now(), wantNot: "GORM"},
		{name: "fast in debug", debug: true, begin: time.Now(), want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newGormSlogLogger(newBufferLogger(&buf), tt.debug)

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
				assert.Contains(t, buf.String(), "SELECT 1")
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var fallback, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&fallback), false)
	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-7")))

	l.Trace(ctx, time.Now(), func() (string, int64) { return "INSERT INTO plans", 0 }, errors.New("deadlock"))

	assert.Empty(t, fallback.String())
	assert.Contains(t, scoped.String(), "request_id=req-7")
	assert.Contains(t, scoped.String(), "INSERT INTO plans")
}

func TestGormSlogLogger_LogModeSilences(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), true).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	l.Info(context.Background(), "hello %s", "world")

	assert.Empty(t, buf.String())
}

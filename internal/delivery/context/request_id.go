// Package context carries request-scoped values from the HTTP layer into
// services.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a request id is read from and echoed in.
const HeaderXRequestID = "X-Request-Id"

type contextKey struct{ name string }

//nolint:gochecknoglobals
var (
	requestIDKey = contextKey{"request_id"}
	loggerKey    = contextKey{"logger"}
)

// RequestID returns the id stored on c by the request id middleware.
func RequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey.name).(string)

	return id
}

// SetRequestID stores id on c.
func SetRequestID(c echo.Context, id string) {
	c.Set(requestIDKey.name, id)
}

// RequestIDFrom returns the request id carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger returns the request-scoped logger of ctx, or fallback when the
// request has none.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	if fallback == nil {
		return slog.Default()
	}

	return fallback
}

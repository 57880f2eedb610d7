package logger

import (
	"context"
	"log/slog"
)

// ContextKey types the request-scoped values the middleware chain
// stores for logging, keeping them apart from other context keys.
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	UserIDKey    ContextKey = "user_id"
)

// ContextLogger derives per-request loggers carrying the request id
// and, once the API key is resolved, the acting user id.
type ContextLogger struct {
	logger *slog.Logger
}

func NewContextLogger(logger *slog.Logger) *ContextLogger {
	return &ContextLogger{logger: logger}
}

// WithContext returns the base logger annotated with whichever
// request-scoped values are present. Absent keys add nothing.
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	args := make([]any, 0, 4)
	for _, key := range []ContextKey{RequestIDKey, UserIDKey} {
		if value, ok := ctx.Value(key).(string); ok {
			args = append(args, string(key), value)
		}
	}
	return cl.logger.With(args...)
}

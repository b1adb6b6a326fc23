// Package contextkeys переносит по контексту запроса логгер и trace_id.
package contextkeys

import (
	"context"

	"agency-service/internal/core/port"
)

type ctxKey int

const (
	loggerKey ctxKey = iota
	traceIDKey
)

func ContextWithLogger(ctx context.Context, logger port.LoggerPort) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext никогда не возвращает nil: без логгера в контексте
// (фоновые задачи, тесты) записи просто отбрасываются.
func LoggerFromContext(ctx context.Context) port.LoggerPort {
	if logger, ok := ctx.Value(loggerKey).(port.LoggerPort); ok && logger != nil {
		return logger
	}
	return discard{}
}

func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext возвращает "" для контекста вне HTTP-запроса.
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey).(string)
	return traceID
}

type discard struct{}

func (discard) Info(string, port.Fields)                 {}
func (discard) Warn(string, port.Fields)                 {}
func (discard) Error(string, error, port.Fields)         {}
func (discard) Debug(string, port.Fields)                {}
func (d discard) WithFields(port.Fields) port.LoggerPort { return d }

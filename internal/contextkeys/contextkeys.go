// Package contextkeys - значения уровня запроса, которые едут через context:
// логгер с полями запроса и trace_id для исходящих вызовов backend.
package contextkeys

import (
	"context"

	"saas-dashboard/internal/core/port"
)

// key - типизированный ключ, у каждого значения свой тип ключа
type key[T any] struct{ name string }

func (k key[T]) with(ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, k, v)
}

func (k key[T]) from(ctx context.Context) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

var (
	loggerKey  = key[port.LoggerPort]{name: "logger"}
	traceIDKey = key[string]{name: "trace_id"}
)

func ContextWithLogger(ctx context.Context, logger port.LoggerPort) context.Context {
	return loggerKey.with(ctx, logger)
}

// LoggerFromContext никогда не возвращает nil: без логгера в контексте
// пишет в никуда
func LoggerFromContext(ctx context.Context) port.LoggerPort {
	if logger, ok := loggerKey.from(ctx); ok && logger != nil {
		return logger
	}
	return noopLogger{}
}

func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return traceIDKey.with(ctx, traceID)
}

// TraceIDFromContext - пустая строка, если trace_id не задан
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := traceIDKey.from(ctx)
	return traceID
}

type noopLogger struct{}

func (noopLogger) Info(string, port.Fields)         {}
func (noopLogger) Warn(string, port.Fields)         {}
func (noopLogger) Error(string, error, port.Fields) {}
func (noopLogger) Debug(string, port.Fields)        {}
func (n noopLogger) WithFields(port.Fields) port.LoggerPort {
	return n
}

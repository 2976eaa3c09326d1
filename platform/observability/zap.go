package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TraceFields возвращает поля trace_id и span_id, если в ctx есть валидный span
func TraceFields(ctx context.Context) []zap.Field {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	}
}

// L возвращает logger запроса, если его положил HTTPMiddleware,
// иначе base с trace_id/span_id из ctx.
func L(ctx context.Context, base *zap.Logger) *zap.Logger {
	if l := LoggerFromContext(ctx); l != nil {
		return l
	}
	if base == nil {
		base = zap.NewNop()
	}
	fields := TraceFields(ctx)
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

type ctxKeyLogger struct{}

// WithLogger кладёт logger в контекст
func WithLogger(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger{}, log)
}

// LoggerFromContext возвращает logger из контекста или nil
func LoggerFromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKeyLogger{}).(*zap.Logger); ok {
		return l
	}
	return nil
}

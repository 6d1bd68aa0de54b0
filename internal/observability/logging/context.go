package logging

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

type requestIDKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// contextHandler adds the request ID and active span to each record.
type contextHandler struct {
	inner     slog.Handler
	projectID string
}

func newContextHandler(inner slog.Handler, projectID string) *contextHandler {
	return &contextHandler{inner: inner, projectID: projectID}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	if ctx != nil {
		if id := RequestIDFromContext(ctx); id != "" {
			record.AddAttrs(slog.String("request_id", id))
		}

		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			record.AddAttrs(
				slog.String("trace_id", sc.TraceID().String()),
				slog.String("span_id", sc.SpanID().String()),
			)
			record.AddAttrs(platformTraceAttrs(sc, h.projectID)...)
		}
	}

	return h.inner.Handle(ctx, record)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newContextHandler(h.inner.WithAttrs(attrs), h.projectID)
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return newContextHandler(h.inner.WithGroup(name), h.projectID)
}

//go:build !gcloud

package logging

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

func platformTraceAttrs(_ trace.SpanContext, _ string) []slog.Attr {
	return nil
}

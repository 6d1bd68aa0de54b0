//go:build gcloud

package logging

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// platformTraceAttrs links log entries to Cloud Trace.
func platformTraceAttrs(sc trace.SpanContext, projectID string) []slog.Attr {
	if projectID == "" {
		return nil
	}
	return []slog.Attr{
		slog.String("logging.googleapis.com/trace", "projects/"+projectID+"/traces/"+sc.TraceID().String()),
		slog.String("logging.googleapis.com/spanId", sc.SpanID().String()),
		slog.Bool("logging.googleapis.com/trace_sampled", sc.IsSampled()),
	}
}

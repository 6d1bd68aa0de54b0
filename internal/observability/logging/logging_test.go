package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel/trace"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{
		Service:       ServiceInfo{Name: "big-telesales", Version: "1.2.3"},
		Environment:   EnvProd,
		Level:         slog.LevelInfo,
		DefaultModule: Module("visit-planning"),
		Writer:        &buf,
	})

	traceID, _ := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
	spanID, _ := trace.SpanIDFromHex("b7ad6b7169203331")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))
	ctx = WithRequestID(ctx, "req-42")

	logger.DebugContext(ctx, "hidden")
	logger.InfoContext(ctx, "visits generated", slog.Int("created_count", 2))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}

	want := map[string]any{
		"msg":        "visits generated",
		"service":    "big-telesales",
		"version":    "1.2.3",
		"env":        "prod",
		"module":     "visit-planning",
		"request_id": "req-42",
		"trace_id":   "0af7651916cd43dd8448eb211c80319c",
		"span_id":    "b7ad6b7169203331",
	}
	for key, value := range want {
		if entry[key] != value {
			t.Errorf("%s = %v, want %v", key, entry[key], value)
		}
	}
}

func TestNewLoggerTextInDev(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Environment: EnvDev, Writer: &buf})

	WithModule(logger, "jobs").Info("maintenance run finished")

	out := buf.String()
	if !strings.Contains(out, `msg="maintenance run finished"`) || !strings.Contains(out, "module=jobs") {
		t.Errorf("text output = %q", out)
	}
	if strings.Contains(out, "request_id") {
		t.Errorf("request_id logged without one in context: %q", out)
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q", got)
	}
	if got := RequestIDFromContext(WithRequestID(context.Background(), "abc")); got != "abc" {
		t.Errorf("RequestIDFromContext() = %q, want abc", got)
	}
}

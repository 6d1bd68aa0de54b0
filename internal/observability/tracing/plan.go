package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const planTracerName = "github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/plan"

func PlanTracer() trace.Tracer {
	return otel.Tracer(planTracerName)
}

func StartGenerateSpan(ctx context.Context, plannedDate, timeZone string) (context.Context, trace.Span) {
	return PlanTracer().Start(ctx, "plan.generate",
		trace.WithAttributes(
			attribute.String("plan.date", plannedDate),
			attribute.String("plan.time_zone", timeZone),
		),
	)
}

func StartRecalculateSpan(ctx context.Context, days int, timeZone string) (context.Context, trace.Span) {
	return PlanTracer().Start(ctx, "plan.recalculate",
		trace.WithAttributes(
			attribute.Int("plan.horizon_days", days),
			attribute.String("plan.time_zone", timeZone),
		),
	)
}

func StartCleanupSpan(ctx context.Context, retentionDays int, cutoff string) (context.Context, trace.Span) {
	return PlanTracer().Start(ctx, "plan.cleanup",
		trace.WithAttributes(
			attribute.Int("cleanup.retention_days", retentionDays),
			attribute.String("cleanup.cutoff", cutoff),
		),
	)
}

func StartRouteMigrationSpan(ctx context.Context) (context.Context, trace.Span) {
	return PlanTracer().Start(ctx, "plan.route_migration")
}

func RecordGenerateResult(span trace.Span, createdCount, existingCount, filteredCount, failedCount int, err error) {
	span.SetAttributes(
		attribute.Int("plan.created_count", createdCount),
		attribute.Int("plan.existing_count", existingCount),
		attribute.Int("plan.filtered_count", filteredCount),
		attribute.Int("plan.failed_count", failedCount),
	)
	setStatus(span, err)
}

func RecordRecalculateResult(span trace.Span, daysProcessed, createdCount, failedCount int, err error) {
	span.SetAttributes(
		attribute.Int("plan.days_processed", daysProcessed),
		attribute.Int("plan.created_count", createdCount),
		attribute.Int("plan.failed_count", failedCount),
	)
	setStatus(span, err)
}

func RecordCleanupResult(span trace.Span, scannedCount, removedCount, failedCount int, err error) {
	span.SetAttributes(
		attribute.Int("cleanup.scanned_count", scannedCount),
		attribute.Int("cleanup.removed_count", removedCount),
		attribute.Int("cleanup.failed_count", failedCount),
	)
	setStatus(span, err)
}

func RecordRouteMigrationResult(span trace.Span, migratedCount, skippedCount, failedCount int, err error) {
	span.SetAttributes(
		attribute.Int("migration.migrated_count", migratedCount),
		attribute.Int("migration.skipped_count", skippedCount),
		attribute.Int("migration.failed_count", failedCount),
	)
	setStatus(span, err)
}

func setStatus(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	planMeterName = "plan.service"
)

// Route evaluation outcomes.
const (
	OutcomeCreated  = "created"
	OutcomeExisting = "existing"
	OutcomeFiltered = "filtered"
	OutcomeFailed   = "failed"
)

type PlanMetrics struct {
	routesEvaluated    metric.Int64Counter
	visitsCreated      metric.Int64Counter
	generationDuration metric.Float64Histogram
	staleVisitsRemoved metric.Int64Counter
}

func NewPlanMetrics() (*PlanMetrics, error) {
	meter := otel.Meter(planMeterName)

	routesEvaluated, err := meter.Int64Counter(
		"plan_routes_evaluated_total",
		metric.WithDescription("Total number of routes evaluated during plan generation"),
		metric.WithUnit("{route}"),
	)
	if err != nil {
		return nil, err
	}

	visitsCreated, err := meter.Int64Counter(
		"plan_visits_created_total",
		metric.WithDescription("Total number of planned visits created"),
		metric.WithUnit("{visit}"),
	)
	if err != nil {
		return nil, err
	}

	generationDuration, err := meter.Float64Histogram(
		"plan_generation_duration_seconds",
		metric.WithDescription("Plan generation duration for one date"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	staleVisitsRemoved, err := meter.Int64Counter(
		"plan_stale_visits_removed_total",
		metric.WithDescription("Total number of stale scheduled visits removed"),
		metric.WithUnit("{visit}"),
	)
	if err != nil {
		return nil, err
	}

	return &PlanMetrics{
		routesEvaluated:    routesEvaluated,
		visitsCreated:      visitsCreated,
		generationDuration: generationDuration,
		staleVisitsRemoved: staleVisitsRemoved,
	}, nil
}

func (m *PlanMetrics) RecordRouteEvaluated(ctx context.Context, outcome string) {
	m.routesEvaluated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *PlanMetrics) RecordVisitsCreated(ctx context.Context, count int) {
	if count <= 0 {
		return
	}
	m.visitsCreated.Add(ctx, int64(count))
}

func (m *PlanMetrics) RecordGenerationDuration(ctx context.Context, trigger string, duration time.Duration) {
	m.generationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("trigger", trigger),
	))
}

func (m *PlanMetrics) RecordStaleVisitsRemoved(ctx context.Context, count int) {
	if count <= 0 {
		return
	}
	m.staleVisitsRemoved.Add(ctx, int64(count))
}

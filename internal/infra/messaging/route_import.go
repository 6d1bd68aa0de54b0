package messaging

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/calendar"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/plan"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/session"
)

// RouteImportMessage announces that a batch of routes was imported. Days
// overrides the planning horizon when positive and is capped at
// plan.MaxHorizonDays.
type RouteImportMessage struct {
	Days   int    `json:"days,omitempty"`
	Source string `json:"source,omitempty"`
}

type Recalculator interface {
	Recalculate(ctx context.Context, resolver *calendar.Resolver, days int) (*plan.HorizonResult, error)
}

type ResolverSource interface {
	Resolver(ctx context.Context) (*calendar.Resolver, error)
}

// RouteImportHandler recalculates the planning horizon after a route import.
type RouteImportHandler struct {
	planner     Recalculator
	zones       ResolverSource
	defaultDays int
}

func NewRouteImportHandler(planner Recalculator, zones ResolverSource, defaultDays int) *RouteImportHandler {
	return &RouteImportHandler{
		planner:     planner,
		zones:       zones,
		defaultDays: defaultDays,
	}
}

// Handle decodes body and runs the recalculation as the system operator. An
// empty body uses the default horizon.
func (h *RouteImportHandler) Handle(ctx context.Context, body []byte) (*plan.HorizonResult, error) {
	var msg RouteImportMessage
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &msg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
		}
	}

	days := msg.Days
	if days <= 0 {
		days = h.defaultDays
	}
	if days > plan.MaxHorizonDays {
		slog.WarnContext(ctx, "route import horizon capped",
			slog.Int("requested_days", days),
			slog.Int("max_days", plan.MaxHorizonDays),
		)
		days = plan.MaxHorizonDays
	}

	resolver, err := h.zones.Resolver(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve time zone: %w", err)
	}

	ctx = session.WithOperator(ctx, session.SystemOperator())
	ctx = plan.WithTrigger(ctx, plan.TriggerRouteImport)

	result, err := h.planner.Recalculate(ctx, resolver, days)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "route import recalculated",
		slog.String("source", msg.Source),
		slog.Int("days", days),
		slog.Int("created_count", result.CreatedCount),
		slog.Int("failed_count", result.FailedCount),
	)

	return result, nil
}

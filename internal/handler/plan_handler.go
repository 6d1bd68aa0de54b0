package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/calendar"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/plan"
)

type PlanHandler struct {
	planner              Planner
	cleaner              Cleaner
	zones                ZoneSource
	defaultHorizonDays   int
	defaultRetentionDays int
}

func NewPlanHandler(planner Planner, cleaner Cleaner, zones ZoneSource, defaultHorizonDays, defaultRetentionDays int) *PlanHandler {
	return &PlanHandler{
		planner:              planner,
		cleaner:              cleaner,
		zones:                zones,
		defaultHorizonDays:   defaultHorizonDays,
		defaultRetentionDays: defaultRetentionDays,
	}
}

func (h *PlanHandler) Register(g *gin.RouterGroup) {
	g.POST("/plan/generate", h.HandleGenerate)
	g.POST("/plan/recalculate", h.HandleRecalculate)
	g.POST("/plan/rebuild", h.HandleRebuild)
	g.POST("/plan/cleanup", h.HandleCleanup)
}

// HandleGenerate plans visits for ?date=YYYY-MM-DD, today when omitted.
func (h *PlanHandler) HandleGenerate(c *gin.Context) {
	ctx := plan.WithTrigger(c.Request.Context(), plan.TriggerHTTP)

	resolver, ok := h.resolver(c)
	if !ok {
		return
	}

	date, ok := dateParam(c, resolver)
	if !ok {
		return
	}

	result, err := h.planner.GenerateForDate(ctx, resolver, date)
	if err != nil {
		slog.ErrorContext(ctx, "plan generation failed",
			slog.String("planned_date", date.String()),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, errTypeProcessing, err.Error())
		return
	}

	respondJSON(c, http.StatusOK, result)
}

func (h *PlanHandler) HandleRecalculate(c *gin.Context) {
	ctx := plan.WithTrigger(c.Request.Context(), plan.TriggerHTTP)

	days := h.defaultHorizonDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, errTypeValidation, "days must be an integer")
			return
		}
		if parsed > plan.MaxHorizonDays {
			respondError(c, http.StatusBadRequest, errTypeValidation,
				"days must not exceed "+strconv.Itoa(plan.MaxHorizonDays))
			return
		}
		days = parsed
	}

	resolver, ok := h.resolver(c)
	if !ok {
		return
	}

	result, err := h.planner.Recalculate(ctx, resolver, days)
	if err != nil {
		slog.ErrorContext(ctx, "plan recalculation failed",
			slog.Int("days", days),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, errTypeProcessing, err.Error())
		return
	}

	respondJSON(c, http.StatusOK, result)
}

func (h *PlanHandler) HandleRebuild(c *gin.Context) {
	ctx := c.Request.Context()

	resolver, ok := h.resolver(c)
	if !ok {
		return
	}

	result, err := h.planner.Rebuild(ctx, resolver)
	if err != nil {
		if respondAuthError(c, err) {
			return
		}
		slog.ErrorContext(ctx, "plan rebuild failed", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, errTypeProcessing, err.Error())
		return
	}

	respondJSON(c, http.StatusOK, result)
}

// HandleCleanup removes stale scheduled visits older than ?retention_days.
func (h *PlanHandler) HandleCleanup(c *gin.Context) {
	ctx := c.Request.Context()

	if !requireAdmin(c) {
		return
	}

	retention := h.defaultRetentionDays
	if raw := c.Query("retention_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(c, http.StatusBadRequest, errTypeValidation, "retention_days must be a non-negative integer")
			return
		}
		retention = parsed
	}

	resolver, ok := h.resolver(c)
	if !ok {
		return
	}

	result, err := h.cleaner.CleanupStale(ctx, resolver, retention)
	if err != nil {
		slog.ErrorContext(ctx, "stale visit cleanup failed", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, errTypeProcessing, err.Error())
		return
	}

	respondJSON(c, http.StatusOK, result)
}

func (h *PlanHandler) resolver(c *gin.Context) (*calendar.Resolver, bool) {
	return resolveZone(c, h.zones)
}

func resolveZone(c *gin.Context, zones ZoneSource) (*calendar.Resolver, bool) {
	resolver, err := zones.Resolver(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to resolve time zone", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, errTypeProcessing, "failed to resolve time zone")
		return nil, false
	}
	return resolver, true
}

// dateParam reads ?date=, defaulting to today in the resolver's zone.
func dateParam(c *gin.Context, resolver *calendar.Resolver) (civil.Date, bool) {
	raw := c.Query("date")
	if raw == "" {
		return resolver.Today(), true
	}

	date, ok := calendar.ParseDate(raw)
	if !ok {
		respondError(c, http.StatusBadRequest, errTypeValidation, "date must be formatted as YYYY-MM-DD")
		return civil.Date{}, false
	}
	return date, true
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/plan"
)

type VisitListResponse struct {
	Date     string                `json:"date"`
	TimeZone string                `json:"time_zone"`
	Visits   []domain.PlannedVisit `json:"visits"`
}

type VisitHandler struct {
	planner Planner
	zones   ZoneSource
}

func NewVisitHandler(planner Planner, zones ZoneSource) *VisitHandler {
	return &VisitHandler{
		planner: planner,
		zones:   zones,
	}
}

func (h *VisitHandler) Register(g *gin.RouterGroup) {
	g.GET("/visits", h.HandleList)
	g.GET("/visits/today", h.HandleToday)
}

func (h *VisitHandler) HandleList(c *gin.Context) {
	if requireOperator(c) == nil {
		return
	}

	resolver, ok := resolveZone(c, h.zones)
	if !ok {
		return
	}

	date, ok := dateParam(c, resolver)
	if !ok {
		return
	}

	h.list(c, resolver.Name(), date.String(), func() ([]domain.PlannedVisit, error) {
		return h.planner.ListForDate(c.Request.Context(), date)
	})
}

// HandleToday tops up today's plan before listing it. A generation failure is
// logged and the existing visits are still returned.
func (h *VisitHandler) HandleToday(c *gin.Context) {
	if requireOperator(c) == nil {
		return
	}

	resolver, ok := resolveZone(c, h.zones)
	if !ok {
		return
	}

	ctx := plan.WithTrigger(c.Request.Context(), plan.TriggerVisitsPage)
	today := resolver.Today()

	if _, err := h.planner.GenerateForDate(ctx, resolver, today); err != nil {
		slog.WarnContext(ctx, "visits page generation failed",
			slog.String("planned_date", today.String()),
			slog.String("error", err.Error()),
		)
	}

	h.list(c, resolver.Name(), today.String(), func() ([]domain.PlannedVisit, error) {
		return h.planner.ListForDate(ctx, today)
	})
}

func (h *VisitHandler) list(c *gin.Context, zone, date string, load func() ([]domain.PlannedVisit, error)) {
	visits, err := load()
	if err != nil {
		if respondAuthError(c, err) {
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to list visits",
			slog.String("planned_date", date),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, errTypeProcessing, "failed to list visits")
		return
	}

	respondJSON(c, http.StatusOK, &VisitListResponse{
		Date:     date,
		TimeZone: zone,
		Visits:   visits,
	})
}

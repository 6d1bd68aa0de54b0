package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/calendar"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

const maxSettingsBodyBytes = 4 << 10

type TimeZoneRequest struct {
	TimeZone string `json:"timezone"`
}

type TimeZoneResponse struct {
	TimeZone string `json:"timezone"`
	Label    string `json:"label,omitempty"`
}

type SettingsHandler struct {
	zones ZoneSource
}

func NewSettingsHandler(zones ZoneSource) *SettingsHandler {
	return &SettingsHandler{
		zones: zones,
	}
}

func (h *SettingsHandler) Register(g *gin.RouterGroup) {
	g.GET("/settings/timezone", h.HandleGetTimeZone)
	g.PUT("/settings/timezone", h.HandleSetTimeZone)
	g.GET("/settings/timezones", h.HandleListTimeZones)
}

func (h *SettingsHandler) HandleGetTimeZone(c *gin.Context) {
	if requireOperator(c) == nil {
		return
	}

	resolver, ok := resolveZone(c, h.zones)
	if !ok {
		return
	}

	respondJSON(c, http.StatusOK, newTimeZoneResponse(resolver.Name()))
}

func (h *SettingsHandler) HandleSetTimeZone(c *gin.Context) {
	ctx := c.Request.Context()

	if !requireAdmin(c) {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxSettingsBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, errTypeValidation, "request body is too large")
			return
		}
		respondError(c, http.StatusBadRequest, errTypeValidation, "failed to read request body")
		return
	}

	var req TimeZoneRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(c, http.StatusBadRequest, errTypeValidation, "request body must be JSON")
		return
	}
	if strings.TrimSpace(req.TimeZone) == "" {
		respondError(c, http.StatusBadRequest, errTypeValidation, "timezone is required")
		return
	}

	resolver, err := h.zones.Set(ctx, req.TimeZone)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTimeZone) {
			respondError(c, http.StatusBadRequest, errTypeValidation, err.Error())
			return
		}
		slog.ErrorContext(ctx, "failed to store time zone", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, errTypeProcessing, "failed to store time zone")
		return
	}

	slog.InfoContext(ctx, "time zone updated", slog.String("time_zone", resolver.Name()))

	respondJSON(c, http.StatusOK, newTimeZoneResponse(resolver.Name()))
}

func (h *SettingsHandler) HandleListTimeZones(c *gin.Context) {
	if requireOperator(c) == nil {
		return
	}

	respondJSON(c, http.StatusOK, calendar.SupportedZones())
}

func newTimeZoneResponse(name string) *TimeZoneResponse {
	resp := &TimeZoneResponse{TimeZone: name}
	for _, z := range calendar.SupportedZones() {
		if z.Name == name {
			resp.Label = z.Label
			break
		}
	}
	return resp
}

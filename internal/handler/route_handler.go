package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	migrator RouteMigrator
}

func NewRouteHandler(migrator RouteMigrator) *RouteHandler {
	return &RouteHandler{
		migrator: migrator,
	}
}

func (h *RouteHandler) Register(g *gin.RouterGroup) {
	g.POST("/routes/migrate", h.HandleMigrate)
}

func (h *RouteHandler) HandleMigrate(c *gin.Context) {
	ctx := c.Request.Context()

	if !requireAdmin(c) {
		return
	}

	result, err := h.migrator.MigrateRoutes(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "route migration failed", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, errTypeProcessing, err.Error())
		return
	}

	respondJSON(c, http.StatusOK, result)
}

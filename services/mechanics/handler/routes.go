package handler

import (
	"github.com/driveaid/driveaid/internal/pkg/middleware"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/services/mechanics/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the HTTP handlers for the mechanics service
type Handler struct {
	mechanicHandler *http.MechanicHandler
	cfg             *models.Config
}

// NewHandler creates and initializes the mechanics service handler
func NewHandler(mechanicHandler *http.MechanicHandler, cfg *models.Config) *Handler {
	return &Handler{
		mechanicHandler: mechanicHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers the mechanic routes with role gating
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/mechanics", middleware.JWTAuthMiddleware(h.cfg.JWT))

	group.GET("/me", h.mechanicHandler.GetMe, middleware.RequireRole(models.RoleMechanic))
	group.PUT("/me", h.mechanicHandler.UpsertMe, middleware.RequireRole(models.RoleMechanic))
	group.PUT("/:id/verify", h.mechanicHandler.Verify, middleware.RequireRole(models.RoleAdmin))
	group.GET("", h.mechanicHandler.List, middleware.RequireRole(models.RoleAdmin))
	group.GET("/nearby", h.mechanicHandler.Nearby)
}

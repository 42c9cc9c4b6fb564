package handler

import (
	"github.com/driveaid/driveaid/internal/pkg/middleware"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/services/requests/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the HTTP handlers for the service-request service
type Handler struct {
	requestHandler *http.RequestHandler
	cfg            *models.Config
}

// NewHandler creates and initializes the service-request handler
func NewHandler(requestHandler *http.RequestHandler, cfg *models.Config) *Handler {
	return &Handler{
		requestHandler: requestHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the service-request routes. Role scoping for
// List and Create lives in the usecase; accept and status transitions
// are mechanic-only at the route level.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/service-requests", middleware.JWTAuthMiddleware(h.cfg.JWT))

	group.GET("", h.requestHandler.List)
	group.POST("", h.requestHandler.Create)
	group.POST("/:id/accept", h.requestHandler.Accept, middleware.RequireRole(models.RoleMechanic))
	group.POST("/:id/status", h.requestHandler.UpdateStatus, middleware.RequireRole(models.RoleMechanic))
}

package handler

import (
	"github.com/driveaid/driveaid/services/users/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the HTTP handlers for the users service
type Handler struct {
	authHandler *http.AuthHandler
	rateLimiter echo.MiddlewareFunc
}

// NewHandler creates and initializes the users service handler.
// rateLimiter guards the credential endpoints and may be nil in tests.
func NewHandler(authHandler *http.AuthHandler, rateLimiter echo.MiddlewareFunc) *Handler {
	return &Handler{
		authHandler: authHandler,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes registers the public auth routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	if h.rateLimiter != nil {
		authGroup.Use(h.rateLimiter)
	}
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
}

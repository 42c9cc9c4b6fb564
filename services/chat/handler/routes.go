package handler

import (
	"github.com/driveaid/driveaid/internal/pkg/middleware"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/services/chat/handler/http"
	"github.com/driveaid/driveaid/services/chat/handler/websocket"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the HTTP and WebSocket handlers for the chat service
type Handler struct {
	chatHandler *http.ChatHandler
	wsHandler   *websocket.WebSocketHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the chat service handler
func NewHandler(chatHandler *http.ChatHandler, wsHandler *websocket.WebSocketHandler, cfg *models.Config) *Handler {
	return &Handler{
		chatHandler: chatHandler,
		wsHandler:   wsHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the chat REST routes and the WebSocket endpoint.
// The WebSocket route authenticates inside the upgrade handshake.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/chat", middleware.JWTAuthMiddleware(h.cfg.JWT))
	group.GET("/:id", h.chatHandler.History)
	group.POST("/:id", h.chatHandler.Send)

	e.GET("/ws", h.wsHandler.HandleConnection)
}

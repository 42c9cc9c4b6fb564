package websocket

import (
	"encoding/json"
	"strings"

	"github.com/driveaid/driveaid/internal/pkg/constants"
	"github.com/driveaid/driveaid/internal/pkg/logger"
	"github.com/driveaid/driveaid/internal/pkg/models"
	wspkg "github.com/driveaid/driveaid/internal/pkg/websocket"
	"github.com/labstack/echo/v4"
)

// WebSocketHandler runs the per-connection event loop. Persistence never
// happens here; send_message only relays an optimistic echo to the room
// while the REST chat endpoint writes the canonical message.
type WebSocketHandler struct {
	manager *wspkg.Manager
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(manager *wspkg.Manager) *WebSocketHandler {
	return &WebSocketHandler{manager: manager}
}

// HandleConnection handles GET /ws
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *WebSocketHandler) handleClient(client *models.WebSocketClient) error {
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			logger.Info("WebSocket client disconnected",
				logger.String("user_id", client.UserID))
			return nil
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid message format")
			continue
		}

		h.dispatch(client, &msg)
	}
}

func (h *WebSocketHandler) dispatch(client *models.WebSocketClient, msg *models.WSMessage) {
	switch msg.Event {
	case constants.EventJoinRoom:
		h.handleJoinRoom(client, msg.Data)
	case constants.EventLeaveRoom:
		h.handleLeaveRoom(client, msg.Data)
	case constants.EventSendMessage:
		h.handleSendMessage(client, msg.Data)
	case constants.EventPing:
		h.manager.SendMessage(client, constants.EventPong, nil)
	default:
		h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Unknown event: "+msg.Event)
	}
}

func (h *WebSocketHandler) handleJoinRoom(client *models.WebSocketClient, data json.RawMessage) {
	var payload models.JoinRoomPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.RequestID == "" {
		h.manager.SendErrorMessage(client, constants.ErrorValidationFailed, "request_id is required")
		return
	}

	h.manager.JoinRoom(payload.RequestID, client)
	logger.Debug("Client joined room",
		logger.String("user_id", client.UserID),
		logger.String("request_id", payload.RequestID))
}

func (h *WebSocketHandler) handleLeaveRoom(client *models.WebSocketClient, data json.RawMessage) {
	var payload models.JoinRoomPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.RequestID == "" {
		h.manager.SendErrorMessage(client, constants.ErrorValidationFailed, "request_id is required")
		return
	}

	h.manager.LeaveRoom(payload.RequestID, client.UserID)
}

// handleSendMessage relays an optimistic echo to the other room members.
// The sender's REST call persists the canonical copy, which arrives later
// on the same event with Optimistic=false and the server-issued id.
func (h *WebSocketHandler) handleSendMessage(client *models.WebSocketClient, data json.RawMessage) {
	var payload models.OptimisticMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid message format")
		return
	}
	if payload.RequestID == "" || strings.TrimSpace(payload.Message) == "" {
		h.manager.SendErrorMessage(client, constants.ErrorValidationFailed, "request_id and message are required")
		return
	}

	echo := models.ReceiveMessagePayload{
		RequestID:  payload.RequestID,
		SenderID:   client.UserID,
		Message:    payload.Message,
		TempID:     payload.TempID,
		Optimistic: true,
	}
	h.manager.BroadcastToRoom(payload.RequestID, constants.EventReceiveMessage, echo, client.UserID)
}

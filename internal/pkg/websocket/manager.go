package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/driveaid/driveaid/internal/pkg/constants"
	jwtpkg "github.com/driveaid/driveaid/internal/pkg/jwt"
	"github.com/driveaid/driveaid/internal/pkg/logger"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Manager owns all live WebSocket connections and the per-request chat rooms.
// It performs no membership authorization on room joins; the REST chat service
// is the gate for reading and writing canonical messages.
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	rooms    map[string]map[string]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		rooms:   make(map[string]map[string]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and upgrades a new WebSocket connection,
// then hands the client to handleClient for the read loop.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	return handleClient(client)
}

func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := jwtpkg.ValidateToken(parts[1], m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// AddClient registers a connected client
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient removes a client and evicts it from every room
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
	for requestID, members := range m.rooms {
		delete(members, userID)
		if len(members) == 0 {
			delete(m.rooms, requestID)
		}
	}
}

// GetClient returns a client by user id
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// JoinRoom adds a client to the room for the given request id
func (m *Manager) JoinRoom(requestID string, client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	members, ok := m.rooms[requestID]
	if !ok {
		members = make(map[string]*models.WebSocketClient)
		m.rooms[requestID] = members
	}
	members[client.UserID] = client
}

// LeaveRoom removes a client from the room for the given request id
func (m *Manager) LeaveRoom(requestID string, userID string) {
	m.Lock()
	defer m.Unlock()
	if members, ok := m.rooms[requestID]; ok {
		delete(members, userID)
		if len(members) == 0 {
			delete(m.rooms, requestID)
		}
	}
}

// RoomMembers returns the user ids currently joined to a room
func (m *Manager) RoomMembers(requestID string) []string {
	m.RLock()
	defer m.RUnlock()
	members := make([]string, 0, len(m.rooms[requestID]))
	for userID := range m.rooms[requestID] {
		members = append(members, userID)
	}
	return members
}

// SendMessage sends an event to a single client
func (m *Manager) SendMessage(client *models.WebSocketClient, event string, data interface{}) error {
	if client == nil || client.Conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return client.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error event to a single client
func (m *Manager) SendErrorMessage(client *models.WebSocketClient, code string, message string) error {
	return m.SendMessage(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// BroadcastToRoom fans an event out to every room member. Delivery is
// fire-and-forget; failures are logged and the remaining members still
// receive the event. exceptUserID may be empty to include everyone.
func (m *Manager) BroadcastToRoom(requestID string, event string, data interface{}, exceptUserID string) {
	m.RLock()
	members := make([]*models.WebSocketClient, 0, len(m.rooms[requestID]))
	for userID, client := range m.rooms[requestID] {
		if userID == exceptUserID {
			continue
		}
		members = append(members, client)
	}
	m.RUnlock()

	for _, client := range members {
		if err := m.SendMessage(client, event, data); err != nil {
			logger.Warn("Error sending room message",
				logger.String("request_id", requestID),
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// BroadcastAll fans an event out to every connected client
func (m *Manager) BroadcastAll(event string, data interface{}) {
	m.RLock()
	clients := make([]*models.WebSocketClient, 0, len(m.clients))
	for _, client := range m.clients {
		clients = append(clients, client)
	}
	m.RUnlock()

	for _, client := range clients {
		if err := m.SendMessage(client, event, data); err != nil {
			logger.Warn("Error broadcasting message",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

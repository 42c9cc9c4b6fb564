package models

import (
	"encoding/json"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WSMessage is the envelope for every WebSocket frame
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage is an error event payload
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient tracks one live connection and its authenticated identity
type WebSocketClient struct {
	UserID string
	Role   string
	Conn   *websocket.Conn

	// writeMu serializes writes; gorilla connections permit a single
	// concurrent writer while NSQ fan-out and the read loop both send.
	writeMu sync.Mutex
}

// WriteJSON writes v to the connection while holding the client write lock
func (c *WebSocketClient) WriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(v)
}

// WebSocketClaims are the JWT claims expected on WebSocket connections
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JoinRoomPayload is the client payload for the join_room event
type JoinRoomPayload struct {
	RequestID string `json:"request_id"`
}

// OptimisticMessagePayload is the client payload for the send_message event.
// It is relayed to other room members without persistence; TempID is the
// caller-generated correlation token used to reconcile against the canonical
// message once REST persistence confirms or fails.
type OptimisticMessagePayload struct {
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
	TempID    string `json:"temp_id"`
}

// ReceiveMessagePayload is the fan-out payload for the receive_message event.
// Optimistic relays carry Optimistic=true and no ID; canonical messages carry
// the persisted ID and server timestamp.
type ReceiveMessagePayload struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	RequestID  string     `json:"request_id"`
	SenderID   string     `json:"sender_id"`
	Message    string     `json:"message"`
	TempID     string     `json:"temp_id,omitempty"`
	Optimistic bool       `json:"optimistic"`
	CreatedAt  string     `json:"created_at,omitempty"`
}

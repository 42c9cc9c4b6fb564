package models

import "github.com/google/uuid"

// RequestCreatedEvent is published on the request.created topic after a
// service request is persisted, and fanned out to every connected client.
type RequestCreatedEvent struct {
	Request *ServiceRequest `json:"request"`
}

// ChatMessageEvent is published on the chat.message topic after a chat
// message is persisted, and fanned out to the request's room.
type ChatMessageEvent struct {
	Message *ChatMessage `json:"message"`
}

// RequestStatusEvent is published when a request is accepted or its status
// changes, and fanned out to the request's room.
type RequestStatusEvent struct {
	RequestID  uuid.UUID  `json:"request_id"`
	Status     string     `json:"status"`
	MechanicID *uuid.UUID `json:"mechanic_id,omitempty"`
}

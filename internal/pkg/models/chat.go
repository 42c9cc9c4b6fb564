package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one persisted message in a service request's chat.
// Messages are immutable and ordered by CreatedAt ascending.
type ChatMessage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RequestID uuid.UUID `json:"request_id" db:"request_id"`
	SenderID  uuid.UUID `json:"sender_id" db:"sender_id"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SendMessagePayload is the payload for POST /chat/:requestId
type SendMessagePayload struct {
	Message string `json:"message"`
}

package gateway

import (
	"github.com/driveaid/driveaid/internal/pkg/nsq"
)

// ChatGW implements the chat gateways over NSQ
type ChatGW struct {
	producer *nsq.Producer
}

// NewChatGW creates a new chat gateway
func NewChatGW(producer *nsq.Producer) *ChatGW {
	return &ChatGW{
		producer: producer,
	}
}

package usecase

import (
	"github.com/driveaid/driveaid/services/chat"
)

// ChatUC implements the chat usecase
type ChatUC struct {
	repo      chat.ChatRepo
	gw        chat.ChatGW
	requests  chat.RequestStore
	mechanics chat.MechanicStore
}

// NewChatUC creates a new chat usecase
func NewChatUC(repo chat.ChatRepo, gw chat.ChatGW, requests chat.RequestStore, mechanics chat.MechanicStore) *ChatUC {
	return &ChatUC{
		repo:      repo,
		gw:        gw,
		requests:  requests,
		mechanics: mechanics,
	}
}

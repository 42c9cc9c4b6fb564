package http

import (
	"net/http"
	"strconv"

	"github.com/driveaid/driveaid/internal/pkg/middleware"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/internal/utils"
	"github.com/driveaid/driveaid/services/chat"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ChatHandler handles HTTP requests for request chats
type ChatHandler struct {
	chatUC chat.ChatUC
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatUC chat.ChatUC) *ChatHandler {
	return &ChatHandler{chatUC: chatUC}
}

// History handles GET /chat/:id
func (h *ChatHandler) History(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid limit parameter")
		}
	}
	skip := 0
	if raw := c.QueryParam("skip"); raw != "" {
		skip, err = strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid skip parameter")
		}
	}

	messages, err := h.chatUC.History(c.Request().Context(), actor, requestID, limit, skip)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Chat history retrieved", messages)
}

// Send handles POST /chat/:id
func (h *ChatHandler) Send(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	var payload models.SendMessagePayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	message, err := h.chatUC.Send(c.Request().Context(), actor, requestID, payload.Message)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Chat message sent", message)
}

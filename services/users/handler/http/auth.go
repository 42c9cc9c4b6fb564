package http

import (
	"net/http"

	"github.com/driveaid/driveaid/internal/pkg/logger"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/internal/utils"
	"github.com/driveaid/driveaid/services/users"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("User registration failed",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Login failed",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

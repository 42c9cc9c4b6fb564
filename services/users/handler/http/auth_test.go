package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/services/users/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewAuthHandler(mockUC)
	e := echo.New()

	mockUC.EXPECT().
		Register(gomock.Any(), &models.RegisterRequest{
			FullName: "Budi Santoso",
			Email:    "budi@example.com",
			Password: "secret123",
		}).
		Return(&models.User{ID: uuid.New(), Email: "budi@example.com", Role: models.RoleDriver}, nil)

	c, rec := postJSON(t, e, "/auth/register",
		`{"full_name":"Budi Santoso","email":"budi@example.com","password":"secret123"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "budi@example.com")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterHandlerDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewAuthHandler(mockUC)
	e := echo.New()

	mockUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: user exists", apperrors.ErrValidation))

	c, rec := postJSON(t, e, "/auth/register",
		`{"full_name":"X","email":"taken@example.com","password":"secret123"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewAuthHandler(mockUC)
	e := echo.New()

	mockUC.EXPECT().
		Login(gomock.Any(), &models.LoginRequest{Email: "budi@example.com", Password: "secret123"}).
		Return(&models.AuthResponse{Token: "signed-token", ExpiresAt: 123}, nil)

	c, rec := postJSON(t, e, "/auth/login",
		`{"email":"budi@example.com","password":"secret123"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewAuthHandler(mockUC)
	e := echo.New()

	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation))

	c, rec := postJSON(t, e, "/auth/login",
		`{"email":"budi@example.com","password":"wrong"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

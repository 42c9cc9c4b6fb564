package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusCreated, "Created", map[string]string{"id": "123"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Created", response.Message)
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newTestContext()

	err := ErrorResponseHandler(c, http.StatusTeapot, "short and stout")
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "short and stout", response.Error)
	assert.Equal(t, http.StatusTeapot, response.Code)
}

func TestHelperResponseDefaults(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(echo.Context, string) error
		code     int
		fallback string
	}{
		{"unauthorized", UnauthorizedResponse, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", ForbiddenResponse, http.StatusForbidden, "Forbidden"},
		{"not found", NotFoundResponse, http.StatusNotFound, "Resource not found"},
		{"conflict", ConflictResponse, http.StatusConflict, "Conflict"},
		{"internal", InternalServerErrorResponse, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, tt.fn(c, ""))
			assert.Equal(t, tt.code, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.fallback, response.Error)
		})
	}
}

func TestDomainErrorResponse(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", fmt.Errorf("%w: bad input", apperrors.ErrValidation), http.StatusBadRequest},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", fmt.Errorf("%w: not yours", apperrors.ErrForbidden), http.StatusForbidden},
		{"not found", fmt.Errorf("%w: request", apperrors.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("%w: already taken", apperrors.ErrConflict), http.StatusConflict},
		{"unclassified", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, DomainErrorResponse(c, tt.err))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestDomainErrorResponseHidesInternalDetail(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, DomainErrorResponse(c, errors.New("pq: connection refused")))
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

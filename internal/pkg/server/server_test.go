package server

import (
	"context"
	"errors"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveaid/driveaid/internal/pkg/logger"
	"github.com/driveaid/driveaid/internal/pkg/models"
)

func newTestLogger(t *testing.T) *logger.ZapLogger {
	zapLogger, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)
	return zapLogger
}

func TestNewGracefulServer(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, newTestLogger(t), 8080)
	assert.NotNil(t, gs)
}

func TestGracefulServer_Shutdown(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, newTestLogger(t), 0)

	// Shutting down a server that never started is a no-op.
	err := gs.Shutdown()
	assert.NoError(t, err)
}

func TestShutdownManager_RunsRegisteredFunctions(t *testing.T) {
	sm := NewShutdownManager(newTestLogger(t))

	callOrder := []int{}
	for i := 0; i < 3; i++ {
		index := i
		sm.Register(func(ctx context.Context) error {
			callOrder = append(callOrder, index)
			return nil
		})
	}

	err := sm.Shutdown(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, callOrder)
}

func TestShutdownManager_ContinuesPastFailures(t *testing.T) {
	sm := NewShutdownManager(newTestLogger(t))

	sm.Register(func(ctx context.Context) error {
		return errors.New("first component failed")
	})

	secondCalled := false
	sm.Register(func(ctx context.Context) error {
		secondCalled = true
		return nil
	})

	err := sm.Shutdown(context.Background())
	assert.NoError(t, err)
	assert.True(t, secondCalled)
}

func TestShutdownManager_NoFunctions(t *testing.T) {
	sm := NewShutdownManager(newTestLogger(t))
	assert.NoError(t, sm.Shutdown(context.Background()))
}

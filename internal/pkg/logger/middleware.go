package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ZapEchoMiddleware creates request-logging middleware for Echo
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userIDStr := "anonymous"
			if userID := c.Get("user_id"); userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			l := logger.Logger.With(
				zap.Int("status", statusCode),
				zap.String("latency", latency.String()),
				zap.Int64("latency_ms", latency.Milliseconds()),
				zap.String("client_ip", clientIP),
				zap.String("method", method),
				zap.String("path", path),
				zap.String("user_id", userIDStr),
				zap.String("request_id", requestID),
			)

			switch {
			case statusCode >= 500:
				if err != nil {
					l.Error("Server error", zap.Error(err))
				} else {
					l.Error("Server error")
				}
			case statusCode >= 400:
				l.Warn("Client error")
			default:
				l.Info("Request processed")
			}

			return err
		}
	}
}

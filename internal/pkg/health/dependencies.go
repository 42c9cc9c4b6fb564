package health

import (
	"context"
	"net/http"
	"time"

	"github.com/driveaid/driveaid/internal/pkg/database"
	"github.com/labstack/echo/v4"
)

const dependencyCheckTimeout = 2 * time.Second

// Checker reports whether one backing dependency is reachable
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresChecker checks PostgreSQL connectivity
type PostgresChecker struct {
	client *database.PostgresClient
}

// NewPostgresChecker creates a PostgreSQL health checker
func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

// CheckHealth pings the database
func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	return p.client.GetDB().PingContext(ctx)
}

// RedisChecker checks Redis connectivity
type RedisChecker struct {
	client *database.RedisClient
}

// NewRedisChecker creates a Redis health checker
func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

// CheckHealth pings Redis
func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	return r.client.GetClient().Ping(ctx).Err()
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// RegisterDependencyHealth registers GET /health/deps, which probes every
// named dependency and returns 503 if any is unreachable.
func RegisterDependencyHealth(e *echo.Echo, checkers map[string]Checker) {
	e.GET("/health/deps", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), dependencyCheckTimeout)
		defer cancel()

		statuses := make(map[string]dependencyStatus, len(checkers))
		healthy := true
		for name, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				statuses[name] = dependencyStatus{Status: "down", Error: err.Error()}
				healthy = false
				continue
			}
			statuses[name] = dependencyStatus{Status: "up"}
		}

		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, statuses)
	})
}

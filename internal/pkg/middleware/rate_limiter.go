package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/driveaid/driveaid/internal/pkg/database"
	"github.com/driveaid/driveaid/internal/utils"
	"github.com/labstack/echo/v4"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *database.RedisClient
	KeyPrefix   string
	Limit       int
	Period      time.Duration
}

// RateLimiterMiddleware limits requests per client using a Redis counter.
// The counter key combines the route and the client IP, or the
// authenticated user id when one is present. Requests pass through when
// Redis is unreachable.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID := c.Get("user_id"); userID != nil {
				identifier = fmt.Sprintf("%v", userID)
			}

			key := fmt.Sprintf("%s:%s:%s", config.KeyPrefix, c.Path(), identifier)
			ctx := c.Request().Context()

			count, err := config.RedisClient.GetClient().Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if count == 1 {
				config.RedisClient.GetClient().Expire(ctx, key, config.Period)
			}

			if count > int64(config.Limit) {
				ttl, _ := config.RedisClient.GetClient().TTL(ctx, key).Result()
				c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))

			return next(c)
		}
	}
}

// AuthRateLimiter limits credential endpoints by client IP
func AuthRateLimiter(limit int, period time.Duration, redisClient *database.RedisClient) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		KeyPrefix:   "rate:auth",
		Limit:       limit,
		Period:      period,
	})
}

package gateway

import (
	"errors"
	"net/http"
	"time"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	"github.com/driveaid/driveaid/internal/pkg/database"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/internal/pkg/nsq"
	"github.com/driveaid/driveaid/internal/pkg/retry"
)

// RequestGW implements the service-request gateways: NSQ publishing and
// forward geocoding with a Redis cache in front.
type RequestGW struct {
	producer    *nsq.Producer
	redisClient *database.RedisClient
	httpClient  *http.Client
	retrier     *retry.Retrier
	cfg         models.GeocoderConfig
}

// NewRequestGW creates a new service-request gateway
func NewRequestGW(producer *nsq.Producer, redisClient *database.RedisClient, cfg models.GeocoderConfig) *RequestGW {
	retryConfig := retry.DefaultConfig()
	retryConfig.RetryableFunc = func(err error) bool {
		// A clean miss will not improve on retry; transient transport
		// failures might.
		return !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation)
	}

	return &RequestGW{
		producer:    producer,
		redisClient: redisClient,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		retrier: retry.New(retryConfig),
		cfg:     cfg,
	}
}

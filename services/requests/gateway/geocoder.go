package gateway

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	"github.com/driveaid/driveaid/internal/pkg/constants"
	"github.com/driveaid/driveaid/internal/pkg/logger"
	"github.com/driveaid/driveaid/internal/pkg/models"
)

// geocodeResult matches the Nominatim search response shape
type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a free-form address to coordinates. Results are
// cached in Redis keyed by a hash of the normalized address, so repeat
// submissions from the same spot skip the external call.
func (g *RequestGW) Geocode(ctx context.Context, address string) (*models.Location, error) {
	normalized := strings.ToLower(strings.TrimSpace(address))
	if normalized == "" {
		return nil, fmt.Errorf("%w: address is empty", apperrors.ErrValidation)
	}

	cacheKey := g.cacheKey(normalized)
	if cached, err := g.redisClient.Get(ctx, cacheKey); err == nil {
		var location models.Location
		if err := json.Unmarshal([]byte(cached), &location); err == nil {
			return &location, nil
		}
	}

	var location *models.Location
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		var lookupErr error
		location, lookupErr = g.lookupAddress(ctx, normalized)
		return lookupErr
	})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(location)
	if err == nil {
		ttl := time.Duration(g.cfg.CacheTTL) * time.Second
		if cacheErr := g.redisClient.Set(ctx, cacheKey, payload, ttl); cacheErr != nil {
			logger.Warn("Failed to cache geocode result",
				logger.String("key", cacheKey),
				logger.Err(cacheErr))
		}
	}

	return location, nil
}

func (g *RequestGW) cacheKey(normalized string) string {
	sum := sha1.Sum([]byte(normalized))
	return fmt.Sprintf(constants.KeyGeocodeCache, hex.EncodeToString(sum[:]))
}

func (g *RequestGW) lookupAddress(ctx context.Context, address string) (*models.Location, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&limit=1&q=%s",
		strings.TrimRight(g.cfg.BaseURL, "/"), url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no geocode match for address", apperrors.ErrNotFound)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in geocode response: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in geocode response: %w", err)
	}

	return &models.Location{Latitude: lat, Longitude: lng}, nil
}

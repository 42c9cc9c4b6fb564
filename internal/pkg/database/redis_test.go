package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"

	"github.com/driveaid/driveaid/internal/pkg/models"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		Password: "",
		DB:       0,
		PoolSize: 10,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}
	ctx := context.Background()

	mock.ExpectSet("geocode:abc", "payload", time.Minute).SetVal("OK")
	mock.ExpectGet("geocode:abc").SetVal("payload")

	assert.NoError(t, client.Set(ctx, "geocode:abc", "payload", time.Minute))

	val, err := client.Get(ctx, "geocode:abc")
	assert.NoError(t, err)
	assert.Equal(t, "payload", val)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GetMissingKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	mock.ExpectGet("geocode:missing").RedisNil()

	_, err := client.Get(context.Background(), "geocode:missing")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	mock.ExpectDel("geocode:abc").SetVal(1)

	assert.NoError(t, client.Delete(context.Background(), "geocode:abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoAdd(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	mock.ExpectGeoAdd("mechanics:geo", &redis.GeoLocation{
		Longitude: 106.8456,
		Latitude:  -6.2088,
		Name:      "mechanic-1",
	}).SetVal(1)

	err := client.GeoAdd(context.Background(), "mechanics:geo", 106.8456, -6.2088, "mechanic-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoRemove(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	mock.ExpectZRem("mechanics:geo", "mechanic-1").SetVal(1)

	err := client.GeoRemove(context.Background(), "mechanics:geo", "mechanic-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoRadius(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	query := &redis.GeoRadiusQuery{
		Radius:    5,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
	}
	mock.ExpectGeoRadius("mechanics:geo", 106.8456, -6.2088, query).SetVal([]redis.GeoLocation{
		{Name: "mechanic-1", Dist: 1.2},
	})

	locations, err := client.GeoRadius(context.Background(), "mechanics:geo", 106.8456, -6.2088, 5, "km")
	assert.NoError(t, err)
	assert.Len(t, locations, 1)
	assert.Equal(t, "mechanic-1", locations[0].Name)
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Mechanic represents a mechanic profile owned by a user with role mechanic.
// One profile per user; IsVerified is mutated only by admins.
type Mechanic struct {
	ID         uuid.UUID      `json:"id" db:"id"`
	UserID     uuid.UUID      `json:"user_id" db:"user_id"`
	ShopName   string         `json:"shop_name" db:"shop_name"`
	Services   pq.StringArray `json:"services" db:"services"`
	Latitude   *float64       `json:"latitude,omitempty" db:"latitude"`
	Longitude  *float64       `json:"longitude,omitempty" db:"longitude"`
	Geohash    *string        `json:"geohash,omitempty" db:"geohash"`
	IsVerified bool           `json:"is_verified" db:"is_verified"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
}

// MechanicUpsertRequest is the payload for PUT /mechanics/me
type MechanicUpsertRequest struct {
	ShopName  string   `json:"shop_name"`
	Services  []string `json:"services"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// VerifyRequest is the payload for PUT /mechanics/:id/verify
type VerifyRequest struct {
	IsVerified bool `json:"is_verified"`
}

// NearbyMechanic is a mechanic with its distance from the query point
type NearbyMechanic struct {
	Mechanic
	DistanceKm float64 `json:"distance_km"`
}

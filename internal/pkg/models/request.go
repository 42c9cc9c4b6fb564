package models

import (
	"time"

	"github.com/google/uuid"
)

// Service request lifecycle states. Transitions are monotonic:
// Pending -> Accepted -> Completed, no reversal.
const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusCompleted = "Completed"
)

// ServiceRequest represents one driver's roadside-assistance need.
// MechanicID is null exactly while the request is Pending; the first
// accepting mechanic wins and keeps the assignment.
type ServiceRequest struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	ProblemDescription string     `json:"problem_description" db:"problem_description"`
	Address            string     `json:"address" db:"address"`
	Latitude           *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude          *float64   `json:"longitude,omitempty" db:"longitude"`
	Geohash            *string    `json:"geohash,omitempty" db:"geohash"`
	DriverID           *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	MechanicID         *uuid.UUID `json:"mechanic_id,omitempty" db:"mechanic_id"`
	Status             string     `json:"status" db:"status"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`

	// Joined from the assigned mechanic's profile when MechanicID is set
	MechanicShopName *string `json:"mechanic_shop_name,omitempty" db:"mechanic_shop_name"`
	MechanicVerified *bool   `json:"mechanic_verified,omitempty" db:"mechanic_verified"`
}

// CreateRequestPayload is the payload for POST /service-requests
type CreateRequestPayload struct {
	ProblemDescription string `json:"problem_description"`
	Address            string `json:"address"`
}

// UpdateStatusPayload is the payload for POST /service-requests/:id/status
type UpdateStatusPayload struct {
	Status string `json:"status"`
}

// Location is a geographic coordinate pair
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

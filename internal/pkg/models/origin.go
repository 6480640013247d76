package models

import (
	"time"
)

// AllowedOrigin represents an exact-match origin permitted to make
// credentialed cross-origin requests
type AllowedOrigin struct {
	Origin    string    `json:"origin" db:"origin"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// OriginRequest represents an admin request to add or remove an origin
type OriginRequest struct {
	Origin string `json:"origin" validate:"required"`
}

// AuthEvent is published to NATS after notable authentication activity.
// EventID is assigned by the gateway at publish time.
type AuthEvent struct {
	EventID     string    `json:"event_id,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	PhoneNumber string    `json:"phone_number"`
	Timestamp   time.Time `json:"timestamp"`
}

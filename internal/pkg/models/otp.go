package models

import (
	"time"
)

// OTP represents a one-time password pending verification.
// At most one live record exists per sanitized phone number; a new send
// replaces any previous record for the same key.
type OTP struct {
	PhoneNumber string    `json:"phone_number"`
	Code        string    `json:"code"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SendOTPRequest represents a request to send an OTP
type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// VerifyOTPRequest represents a request to verify an OTP
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Code        string `json:"code" validate:"required"`
}

// AuthResult represents the outcome of a successful OTP verification
type AuthResult struct {
	Token     string      `json:"-"`
	ExpiresAt int64       `json:"-"`
	User      SessionUser `json:"user"`
}

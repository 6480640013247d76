package auth

import (
	"context"

	"github.com/atapsolar/authhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/atapsolar/authhub/services/auth IdentityRepo,OTPRepo,OriginRepo

// IdentityRepo resolves a local-form phone number to its registered identity.
// The backing user and agent tables are read-only to this service.
type IdentityRepo interface {
	GetUserByLocalPhone(ctx context.Context, localPhone string) (*models.User, error)
}

// OTPRepo is the single-slot OTP store keyed by sanitized phone number
type OTPRepo interface {
	// UpsertOTP stores the record, replacing any live record for the same key
	UpsertOTP(ctx context.Context, otp *models.OTP) error

	// GetOTP returns the live record for the key, or nil when none exists
	// or the stored record has expired
	GetOTP(ctx context.Context, phoneNumber string) (*models.OTP, error)

	// ConsumeOTP atomically deletes the record if its code still matches,
	// reporting whether this caller won the deletion
	ConsumeOTP(ctx context.Context, phoneNumber, code string) (bool, error)
}

// OriginRepo manages the durable CORS origin allow-list
type OriginRepo interface {
	ListOrigins(ctx context.Context) ([]string, error)
	AddOrigin(ctx context.Context, origin string) error
	RemoveOrigin(ctx context.Context, origin string) error
}

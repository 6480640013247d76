package auth

import (
	"context"

	"github.com/atapsolar/authhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/atapsolar/authhub/services/auth AuthUC

// AuthUC represents the auth usecase interface
type AuthUC interface {
	// OTP lifecycle
	SendOTP(ctx context.Context, phoneNumber string) error
	VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.AuthResult, error)

	// origin allow-list administration
	ListOrigins(ctx context.Context) ([]string, error)
	AddOrigin(ctx context.Context, origin string) error
	RemoveOrigin(ctx context.Context, origin string) error
}

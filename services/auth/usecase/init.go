package usecase

import (
	"github.com/atapsolar/authhub/internal/pkg/models"
	"github.com/atapsolar/authhub/services/auth"
)

// AuthUC implements the auth usecase
type AuthUC struct {
	identityRepo auth.IdentityRepo
	otpRepo      auth.OTPRepo
	originRepo   auth.OriginRepo
	authGW       auth.AuthGW
	cfg          *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	identityRepo auth.IdentityRepo,
	otpRepo auth.OTPRepo,
	originRepo auth.OriginRepo,
	authGW auth.AuthGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		identityRepo: identityRepo,
		otpRepo:      otpRepo,
		originRepo:   originRepo,
		authGW:       authGW,
		cfg:          cfg,
	}
}

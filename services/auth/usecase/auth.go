package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	jwtpkg "github.com/atapsolar/authhub/internal/pkg/jwt"
	"github.com/atapsolar/authhub/internal/pkg/logger"
	"github.com/atapsolar/authhub/internal/pkg/models"
	"github.com/atapsolar/authhub/internal/utils"
	"github.com/atapsolar/authhub/services/auth"
)

// otpValidity is the lifetime of a pending code
const otpValidity = 5 * time.Minute

// generateOTPCode returns a uniformly random 6-digit code. The range starts
// at 100000 so a leading zero can never occur.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

// SendOTP generates a fresh code for a registered number, stores it in the
// single-slot store and dispatches it over WhatsApp. Unknown numbers are
// rejected before anything is generated, stored or sent.
func (u *AuthUC) SendOTP(ctx context.Context, phoneNumber string) error {
	sanitized := utils.SanitizePhone(phoneNumber)
	if sanitized == "" {
		return auth.ErrInvalidPhoneNumber
	}
	localPhone := utils.ToLocalFormat(sanitized)

	user, err := u.identityRepo.GetUserByLocalPhone(ctx, localPhone)
	if err != nil {
		if errors.Is(err, auth.ErrIdentityNotFound) {
			return auth.ErrUnregisteredNumber
		}
		return fmt.Errorf("identity lookup failed: %w", err)
	}

	code, err := generateOTPCode()
	if err != nil {
		return err
	}

	now := time.Now()
	otp := &models.OTP{
		PhoneNumber: sanitized,
		Code:        code,
		CreatedAt:   now,
		ExpiresAt:   now.Add(otpValidity),
	}

	// Replaces any pending code for this number; the store upsert is the only
	// serialization point for concurrent sends
	if err := u.otpRepo.UpsertOTP(ctx, otp); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	deliveryPhone := utils.ToDeliveryFormat(localPhone)
	message := fmt.Sprintf("Your Atap.solar verification code is: %s", code)

	if err := u.authGW.SendWhatsAppMessage(ctx, deliveryPhone, message); err != nil {
		// The stored code is intentionally left in place: a follow-up send
		// supersedes it, and deleting here would cost a second round-trip
		logger.Error("WhatsApp delivery failed",
			logger.String("phone", utils.MaskPhoneNumber(deliveryPhone)),
			logger.Err(err))
		return auth.ErrDeliveryFailure
	}

	if err := u.authGW.PublishOTPSent(&models.AuthEvent{
		UserID:      user.ID,
		PhoneNumber: sanitized,
		Timestamp:   now,
	}); err != nil {
		logger.Warn("Failed to publish OTP sent event", logger.Err(err))
	}

	logger.Info("OTP dispatched",
		logger.String("phone", utils.MaskPhoneNumber(sanitized)))

	return nil
}

// VerifyOTP checks a submitted code against the pending record, consumes the
// record exactly once and issues a session token. Authorization is read at
// verification time, not send time.
func (u *AuthUC) VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.AuthResult, error) {
	sanitized := utils.SanitizePhone(phoneNumber)
	if sanitized == "" || code == "" {
		return nil, auth.ErrInvalidPhoneNumber
	}
	localPhone := utils.ToLocalFormat(sanitized)

	otp, err := u.otpRepo.GetOTP(ctx, sanitized)
	if err != nil {
		return nil, fmt.Errorf("failed to read OTP: %w", err)
	}

	// Absent record, code mismatch and lapsed expiry all collapse into one
	// error so the response never helps a guessing attacker
	if otp == nil || otp.Code != code || !otp.ExpiresAt.After(time.Now()) {
		return nil, auth.ErrInvalidOrExpiredOTP
	}

	// Second, independent identity lookup: access levels may have changed
	// since the code was sent
	user, err := u.identityRepo.GetUserByLocalPhone(ctx, localPhone)
	if err != nil {
		if errors.Is(err, auth.ErrIdentityNotFound) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("identity lookup failed: %w", err)
	}

	consumed, err := u.otpRepo.ConsumeOTP(ctx, sanitized, code)
	if err != nil {
		return nil, fmt.Errorf("failed to consume OTP: %w", err)
	}
	if !consumed {
		// A concurrent verification redeemed the code first, or a new send
		// superseded it between read and consume
		return nil, auth.ErrInvalidOrExpiredOTP
	}

	isAdmin := user.IsAdmin()

	token, expiresAt, err := jwtpkg.GenerateToken(user, sanitized, isAdmin, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := u.authGW.PublishUserAuthenticated(&models.AuthEvent{
		UserID:      user.ID,
		PhoneNumber: sanitized,
		Timestamp:   time.Now(),
	}); err != nil {
		logger.Warn("Failed to publish authentication event", logger.Err(err))
	}

	logger.Info("User authenticated",
		logger.String("user_id", user.ID),
		logger.String("phone", utils.MaskPhoneNumber(sanitized)),
		logger.Bool("is_admin", isAdmin))

	return &models.AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User: models.SessionUser{
			ID:      user.ID,
			Name:    user.Name,
			Phone:   sanitized,
			IsAdmin: isAdmin,
		},
	}, nil
}

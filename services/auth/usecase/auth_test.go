package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	jwtpkg "github.com/atapsolar/authhub/internal/pkg/jwt"
	"github.com/atapsolar/authhub/internal/pkg/models"
	"github.com/atapsolar/authhub/services/auth"
	"github.com/atapsolar/authhub/services/auth/mocks"
)

var sixDigitCode = regexp.MustCompile(`^[1-9]\d{5}$`)

func setupAuthUCTest(t *testing.T) (*AuthUC, *mocks.MockIdentityRepo, *mocks.MockOTPRepo, *mocks.MockAuthGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockIdentityRepo := mocks.NewMockIdentityRepo(ctrl)
	mockOTPRepo := mocks.NewMockOTPRepo(ctrl)
	mockOriginRepo := mocks.NewMockOriginRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key",
			Expiration: 14 * 24 * 60,
			Issuer:     "auth-hub",
		},
	}

	uc := NewAuthUC(mockIdentityRepo, mockOTPRepo, mockOriginRepo, mockGW, cfg)
	return uc, mockIdentityRepo, mockOTPRepo, mockGW
}

func TestSendOTP_Success(t *testing.T) {
	uc, mockIdentityRepo, mockOTPRepo, mockGW := setupAuthUCTest(t)

	user := &models.User{ID: "user-1", Name: "Jane", Contact: "0123456789"}

	mockIdentityRepo.EXPECT().
		GetUserByLocalPhone(gomock.Any(), "0123456789").
		Return(user, nil)

	var storedCode string
	mockOTPRepo.EXPECT().
		UpsertOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, otp *models.OTP) error {
			assert.Equal(t, "60123456789", otp.PhoneNumber)
			assert.Regexp(t, sixDigitCode, otp.Code)
			assert.WithinDuration(t, otp.CreatedAt.Add(5*time.Minute), otp.ExpiresAt, time.Second)
			storedCode = otp.Code
			return nil
		})

	mockGW.EXPECT().
		SendWhatsAppMessage(gomock.Any(), "60123456789", gomock.Any()).
		DoAndReturn(func(ctx context.Context, toPhone, message string) error {
			assert.Contains(t, message, storedCode)
			assert.Contains(t, message, "Atap.solar verification code")
			return nil
		})

	mockGW.EXPECT().
		PublishOTPSent(gomock.Any()).
		DoAndReturn(func(event *models.AuthEvent) error {
			assert.Equal(t, "user-1", event.UserID)
			assert.Equal(t, "60123456789", event.PhoneNumber)
			return nil
		})

	err := uc.SendOTP(context.Background(), "+60 12-345 6789")
	assert.NoError(t, err)
}

func TestSendOTP_InvalidPhoneNumber(t *testing.T) {
	uc, _, _, _ := setupAuthUCTest(t)

	err := uc.SendOTP(context.Background(), "not a number")
	assert.ErrorIs(t, err, auth.ErrInvalidPhoneNumber)
}

func TestSendOTP_UnregisteredNumber(t *testing.T) {
	uc, mockIdentityRepo, _, _ := setupAuthUCTest(t)

	mockIdentityRepo.EXPECT().
		GetUserByLocalPhone(gomock.Any(), "0123456789").
		Return(nil, auth.ErrIdentityNotFound)

	err := uc.SendOTP(context.Background(), "60123456789")
	assert.ErrorIs(t, err, auth.ErrUnregisteredNumber)
}

func TestSendOTP_StoreError(t *testing.T) {
	uc, mockIdentityRepo, mockOTPRepo, _ := setupAuthUCTest(t)

	mockIdentityRepo.EXPECT().
		GetUserByLocalPhone(gomock.Any(), "0123456789").
		Return(&models.User{ID: "user-1"}, nil)

	mockOTPRepo.EXPECT().
		UpsertOTP(gomock.Any(), gomock.Any()).
		Return(errors.New("redis unavailable"))

	err := uc.SendOTP(context.Background(), "0123456789")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store OTP")
}

func TestSendOTP_DeliveryFailure(t *testing.T) {
	uc, mockIdentityRepo, mockOTPRepo, mockGW := setupAuthUCTest(t)

	mockIdentityRepo.EXPECT().
		GetUserByLocalPhone(gomock.Any(), "0123456789").
		Return(&models.User{ID: "user-1"}, nil)

	// The stored code stays in place when delivery fails; no delete expected
	mockOTPRepo.EXPECT().
		UpsertOTP(gomock.Any(), gomock.Any()).
		Return(nil)

	mockGW.EXPECT().
		SendWhatsAppMessage(gomock.Any(), "60123456789", gomock.Any()).
		Return(errors.New("gateway timeout"))

	err := uc.SendOTP(context.Background(), "0123456789")
	assert.ErrorIs(t, err, auth.ErrDeliveryFailure)
}

func TestVerifyOTP_Success(t *testing.T) {
	uc, mockIdentityRepo, mockOTPRepo, mockGW := setupAuthUCTest(t)

	now := time.Now()
	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), "0123456789").
		Return(&models.OTP{
			PhoneNumber: "0123456789",
			Code:        "482913",
			CreatedAt:   now,
			ExpiresAt:   now.Add(4 * time.Minute),
		}, nil)

	mockIdentityRepo.EXPECT().
		GetUserByLocalPhone(gomock.Any(), "0123456789").
		Return(&models.User{ID: "user-1", Name: "Jane", Contact: "0123456789"}, nil)

	mockOTPRepo.EXPECT().
		ConsumeOTP(gomock.Any(), "0123456789", "482913").
		Return(true, nil)

	mockGW.EXPECT().
		PublishUserAuthenticated(gomock.Any()).
		Return(nil)

	result, err := uc.VerifyOTP(context.Background(), "0123456789", "482913")
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.NotEmpty(t, result.Token)
	assert.Greater(t, result.ExpiresAt, time.Now().Unix())
	assert.Equal(t, "user-1", result.User.ID)
	assert.Equal(t, "Jane", result.User.Name)
	assert.Equal(t, "0123456789", result.User.Phone)
	assert.False(t, result.User.IsAdmin)

	claims, err := jwtpkg.ValidateToken(result.Token, "test-secret-key")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "user", claims["role"])
	assert.Equal(t, false, claims["is_admin"])
}

func TestVerifyOTP_AdminClaims(t *testing.T) {
	uc, mockIdentityRepo, mockOTPRepo, mockGW := setupAuthUCTest(t)

	now := time.Now()
	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), "0123456789").
		Return(&models.OTP{
			PhoneNumber: "0123456789",
			Code:        "482913",
			CreatedAt:   now,
			ExpiresAt:   now.Add(4 * time.Minute),
		}, nil)

	mockIdentityRepo.EXPECT().
		GetUserByLocalPhone(gomock.Any(), "0123456789").
		Return(&models.User{
			ID:          "admin-1",
			Name:        "Ops",
			AccessLevel: pq.StringArray{"admin"},
		}, nil)

	mockOTPRepo.EXPECT().
		ConsumeOTP(gomock.Any(), "0123456789", "482913").
		Return(true, nil)

	mockGW.EXPECT().
		PublishUserAuthenticated(gomock.Any()).
		Return(nil)

	result, err := uc.VerifyOTP(context.Background(), "0123456789", "482913")
	assert.NoError(t, err)
	assert.True(t, result.User.IsAdmin)

	claims, err := jwtpkg.ValidateToken(result.Token, "test-secret-key")
	assert.NoError(t, err)
	assert.Equal(t, true, claims["is_admin"])
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	uc, _, mockOTPRepo, _ := setupAuthUCTest(t)

	now := time.Now()
	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), "0123456789").
		Return(&models.OTP{
			PhoneNumber: "0123456789",
			Code:        "482913",
			CreatedAt:   now,
			ExpiresAt:   now.Add(4 * time.Minute),
		}, nil)

	result, err := uc.VerifyOTP(context.Background(), "0123456789", "000000")
	assert.ErrorIs(t, err, auth.ErrInvalidOrExpiredOTP)
	assert.Nil(t, result)
}

func TestVerifyOTP_NoPendingCode(t *testing.T) {
	uc, _, mockOTPRepo, _ := setupAuthUCTest(t)

	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), "0123456789").
		Return(nil, nil)

	result, err := uc.VerifyOTP(context.Background(), "0123456789", "482913")
	assert.ErrorIs(t, err, auth.ErrInvalidOrExpiredOTP)
	assert.Nil(t, result)
}

func TestVerifyOTP_ExpiredCode(t *testing.T) {
	uc, _, mockOTPRepo, _ := setupAuthUCTest(t)

	now := time.Now()
	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), "0123456789").
		Return(&models.OTP{
			PhoneNumber: "0123456789",
			Code:        "482913",
			CreatedAt:   now.Add(-10 * time.Minute),
			ExpiresAt:   now.Add(-5 * time.Minute),
		}, nil)

	result, err := uc.VerifyOTP(context.Background(), "0123456789", "482913")
	assert.ErrorIs(t, err, auth.ErrInvalidOrExpiredOTP)
	assert.Nil(t, result)
}

func TestVerifyOTP_IdentityNotFound(t *testing.T) {
	uc, mockIdentityRepo, mockOTPRepo, _ := setupAuthUCTest(t)

	now := time.Now()
	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), "0123456789").
		Return(&models.OTP{
			PhoneNumber: "0123456789",
			Code:        "482913",
			CreatedAt:   now,
			ExpiresAt:   now.Add(4 * time.Minute),
		}, nil)

	mockIdentityRepo.EXPECT().
		GetUserByLocalPhone(gomock.Any(), "0123456789").
		Return(nil, auth.ErrIdentityNotFound)

	result, err := uc.VerifyOTP(context.Background(), "0123456789", "482913")
	assert.ErrorIs(t, err, auth.ErrIdentityNotFound)
	assert.Nil(t, result)
}

func TestVerifyOTP_ConsumeLostRace(t *testing.T) {
	uc, mockIdentityRepo, mockOTPRepo, _ := setupAuthUCTest(t)

	now := time.Now()
	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), "0123456789").
		Return(&models.OTP{
			PhoneNumber: "0123456789",
			Code:        "482913",
			CreatedAt:   now,
			ExpiresAt:   now.Add(4 * time.Minute),
		}, nil)

	mockIdentityRepo.EXPECT().
		GetUserByLocalPhone(gomock.Any(), "0123456789").
		Return(&models.User{ID: "user-1"}, nil)

	// Another verification consumed the record between read and consume
	mockOTPRepo.EXPECT().
		ConsumeOTP(gomock.Any(), "0123456789", "482913").
		Return(false, nil)

	result, err := uc.VerifyOTP(context.Background(), "0123456789", "482913")
	assert.ErrorIs(t, err, auth.ErrInvalidOrExpiredOTP)
	assert.Nil(t, result)
}

func TestVerifyOTP_MissingInput(t *testing.T) {
	uc, _, _, _ := setupAuthUCTest(t)

	_, err := uc.VerifyOTP(context.Background(), "", "482913")
	assert.ErrorIs(t, err, auth.ErrInvalidPhoneNumber)

	_, err = uc.VerifyOTP(context.Background(), "0123456789", "")
	assert.ErrorIs(t, err, auth.ErrInvalidPhoneNumber)
}

func TestGenerateOTPCode_Range(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateOTPCode()
		assert.NoError(t, err)
		assert.Regexp(t, sixDigitCode, code)
	}
}

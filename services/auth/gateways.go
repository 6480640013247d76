package auth

import (
	"context"

	"github.com/atapsolar/authhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/atapsolar/authhub/services/auth AuthGW

// AuthGW represents the auth gateway interface for external channels
type AuthGW interface {
	// SendWhatsAppMessage delivers a message to a delivery-form number over
	// the WhatsApp channel. The call blocks the request until it completes
	// or times out; no retries are performed.
	SendWhatsAppMessage(ctx context.Context, toPhone, message string) error

	// auth events, fire-and-forget
	PublishOTPSent(event *models.AuthEvent) error
	PublishUserAuthenticated(event *models.AuthEvent) error
}

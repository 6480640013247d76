package gateway

import (
	"github.com/google/uuid"

	"github.com/atapsolar/authhub/internal/pkg/constants"
	"github.com/atapsolar/authhub/internal/pkg/models"
)

// PublishOTPSent announces a successfully dispatched OTP
func (g *AuthGW) PublishOTPSent(event *models.AuthEvent) error {
	event.EventID = uuid.New().String()
	return g.natsClient.Publish(constants.SubjectOTPSent, event)
}

// PublishUserAuthenticated announces a completed verification
func (g *AuthGW) PublishUserAuthenticated(event *models.AuthEvent) error {
	event.EventID = uuid.New().String()
	return g.natsClient.Publish(constants.SubjectUserAuthenticated, event)
}

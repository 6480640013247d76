package gateway

import (
	"context"
	"fmt"
)

// whatsAppSendRequest is the payload the WhatsApp API expects
type whatsAppSendRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// SendWhatsAppMessage delivers a message to a delivery-form ('601...') number.
// The call blocks until the channel responds or the client timeout fires; a
// failure is reported to the caller immediately, without retries.
func (g *AuthGW) SendWhatsAppMessage(ctx context.Context, toPhone, message string) error {
	req := whatsAppSendRequest{
		To:      toPhone,
		Message: message,
	}

	if err := g.whatsappClient.PostJSON(ctx, "/api/send", req, nil); err != nil {
		return fmt.Errorf("whatsapp send failed: %w", err)
	}

	return nil
}

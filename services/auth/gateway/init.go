package gateway

import (
	"time"

	httpclient "github.com/atapsolar/authhub/internal/pkg/http"
	natspkg "github.com/atapsolar/authhub/internal/pkg/nats"
	"github.com/atapsolar/authhub/internal/pkg/models"
)

// AuthGW implements the auth gateway over the WhatsApp delivery API and NATS
type AuthGW struct {
	whatsappClient *httpclient.Client
	natsClient     *natspkg.Client
}

// NewAuthGW creates a new auth gateway instance
func NewAuthGW(cfg models.WhatsAppConfig, natsClient *natspkg.Client) *AuthGW {
	timeout := time.Duration(cfg.Timeout) * time.Second

	return &AuthGW{
		whatsappClient: httpclient.NewClient(cfg.APIURL, timeout),
		natsClient:     natsClient,
	}
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/atapsolar/authhub/internal/pkg/logger"
	"github.com/atapsolar/authhub/services/auth"
)

// ListOrigins returns the full durable allow-list
func (u *AuthUC) ListOrigins(ctx context.Context) ([]string, error) {
	return u.originRepo.ListOrigins(ctx)
}

// AddOrigin adds an origin to the durable allow-list. The CORS cache is not
// invalidated; the change becomes visible within one cache TTL window.
func (u *AuthUC) AddOrigin(ctx context.Context, origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "" || !strings.HasPrefix(origin, "http") {
		return auth.ErrInvalidOrigin
	}

	if err := u.originRepo.AddOrigin(ctx, origin); err != nil {
		return fmt.Errorf("failed to add origin: %w", err)
	}

	logger.Info("Origin added to allow-list", logger.String("origin", origin))
	return nil
}

// RemoveOrigin removes an origin from the durable allow-list
func (u *AuthUC) RemoveOrigin(ctx context.Context, origin string) error {
	if origin == "" {
		return auth.ErrInvalidOrigin
	}

	if err := u.originRepo.RemoveOrigin(ctx, origin); err != nil {
		return fmt.Errorf("failed to remove origin: %w", err)
	}

	logger.Info("Origin removed from allow-list", logger.String("origin", origin))
	return nil
}

package repository

import (
	"context"
	"fmt"
)

// ListOrigins returns every allowed origin, most recently added first
func (r *AuthRepo) ListOrigins(ctx context.Context) ([]string, error) {
	query := `
		SELECT origin FROM auth_hub_cors_origins
		ORDER BY created_at DESC
	`

	origins := []string{}
	if err := r.db.SelectContext(ctx, &origins, query); err != nil {
		return nil, fmt.Errorf("failed to list origins: %w", err)
	}

	return origins, nil
}

// AddOrigin inserts an origin into the allow-list; adding an existing origin
// is a no-op
func (r *AuthRepo) AddOrigin(ctx context.Context, origin string) error {
	query := `
		INSERT INTO auth_hub_cors_origins (origin, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (origin) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, origin); err != nil {
		return fmt.Errorf("failed to add origin: %w", err)
	}

	return nil
}

// RemoveOrigin deletes an origin from the allow-list. The in-memory cache is
// not invalidated here; it catches up within one TTL window.
func (r *AuthRepo) RemoveOrigin(ctx context.Context, origin string) error {
	query := `
		DELETE FROM auth_hub_cors_origins WHERE origin = $1
	`

	if _, err := r.db.ExecContext(ctx, query, origin); err != nil {
		return fmt.Errorf("failed to remove origin: %w", err)
	}

	return nil
}

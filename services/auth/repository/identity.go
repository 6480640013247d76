package repository

import (
	"context"
	"fmt"

	"github.com/atapsolar/authhub/internal/pkg/models"
	"github.com/atapsolar/authhub/services/auth"
)

// GetUserByLocalPhone resolves a local-form contact number to its user through
// the linked agent profile. The contact column is expected to be unique; a
// second matching row is a data fault and is surfaced as ErrAmbiguousIdentity.
func (r *AuthRepo) GetUserByLocalPhone(ctx context.Context, localPhone string) (*models.User, error) {
	query := `
		SELECT u.id, u.access_level, a.name, a.contact
		FROM "user" u
		JOIN agent a ON u.linked_agent_profile = a.bubble_id
		WHERE a.contact = $1
		LIMIT 2
	`

	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, localPhone); err != nil {
		return nil, fmt.Errorf("failed to look up user by contact: %w", err)
	}

	switch len(users) {
	case 0:
		return nil, auth.ErrIdentityNotFound
	case 1:
		return &users[0], nil
	default:
		return nil, fmt.Errorf("%w: contact %s", auth.ErrAmbiguousIdentity, localPhone)
	}
}

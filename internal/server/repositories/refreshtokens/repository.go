// Package refreshtokens declares the storage contract for refresh tokens and
// its PostgreSQL implementation.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/chirpy/internal/server/models"
)

// Repository persists refresh token rows.
type Repository interface {
	// Create inserts the row as given.
	Create(ctx context.Context, token *models.RefreshToken) error

	// FindWithUser returns the token row joined with its owner, or
	// common.ErrorNotFound.
	FindWithUser(ctx context.Context, token string) (*models.RefreshToken, *models.User, error)

	// Revoke sets revoked_at=at only if it is still null. Unknown tokens are
	// not an error.
	Revoke(ctx context.Context, token string, at time.Time) error
}

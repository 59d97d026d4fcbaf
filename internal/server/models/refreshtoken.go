package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a server-side refresh token row. The token string is the
// primary key. RevokedAt is set at most once.
type RefreshToken struct {
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Usable reports whether the token may still mint access tokens at now.
func (t *RefreshToken) Usable(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

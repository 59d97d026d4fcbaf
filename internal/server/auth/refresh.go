package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/chirpy/internal/common"
	"github.com/dmitrijs2005/chirpy/internal/server/models"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/refreshtokens"
)

// RefreshTokenBytes is the entropy of a refresh token before hex encoding.
const RefreshTokenBytes = 32

// RefreshTokenStore issues, resolves and revokes opaque refresh tokens kept
// in the refresh_tokens table.
type RefreshTokenStore struct {
	repo refreshtokens.Repository
	ttl  time.Duration
	now  func() time.Time
}

func NewRefreshTokenStore(repo refreshtokens.Repository, ttl time.Duration) *RefreshTokenStore {
	return &RefreshTokenStore{repo: repo, ttl: ttl, now: time.Now}
}

// Issue generates and persists a new token for userID. A failed write is
// returned as-is; the token must not be handed out.
func (s *RefreshTokenStore) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := common.MakeRandHexString(RefreshTokenBytes)
	if err != nil {
		return "", fmt.Errorf("error generating refresh token: %w", err)
	}

	now := s.now().UTC()
	row := &models.RefreshToken{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return "", fmt.Errorf("error saving refresh token: %w", err)
	}
	return token, nil
}

// Resolve returns the owner of a usable token. Unknown, revoked and expired
// tokens all yield the same Unauthenticated error.
func (s *RefreshTokenStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	row, user, err := s.repo.FindWithUser(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return uuid.Nil, common.Unauthenticated(common.MsgInvalidRefreshToken)
		}
		return uuid.Nil, fmt.Errorf("error searching refresh token: %w", err)
	}

	if !row.Usable(s.now()) {
		return uuid.Nil, common.Unauthenticated(common.MsgInvalidRefreshToken)
	}
	return user.ID, nil
}

// Revoke marks the token revoked. Unknown or already revoked tokens are not
// an error.
func (s *RefreshTokenStore) Revoke(ctx context.Context, token string) error {
	if err := s.repo.Revoke(ctx, token, s.now().UTC()); err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	return nil
}

// Package services contains the server's business logic. Transports (HTTP,
// gRPC) call into it and translate the common.Error kinds it returns.
package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/chirpy/internal/common"
	"github.com/dmitrijs2005/chirpy/internal/logging"
	"github.com/dmitrijs2005/chirpy/internal/server/auth"
	"github.com/dmitrijs2005/chirpy/internal/server/config"
	"github.com/dmitrijs2005/chirpy/internal/server/models"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/repomanager"
)

// LoginInput is what a client sends to log in. ExpiresInSeconds is optional;
// zero or negative means the default lifetime.
type LoginInput struct {
	Email            string
	Password         string
	ExpiresInSeconds int
}

// LoginResult is returned on successful login.
type LoginResult struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

// SessionService handles login, refresh, revoke and resolution of the
// caller's identity from an access token.
type SessionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	refresh     *auth.RefreshTokenStore
	jwtSecret   []byte
	accessTTL   time.Duration
	logger      logging.Logger
}

func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, cfg *config.Config, l logging.Logger) *SessionService {
	return &SessionService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		refresh:     auth.NewRefreshTokenStore(m.RefreshTokens(db), cfg.RefreshTokenTTL),
		jwtSecret:   []byte(cfg.SecretKey),
		accessTTL:   cfg.AccessTokenTTL,
		logger:      l.With("module", "session"),
	}
}

// dummyHash is verified against when the email is unknown so that both
// failure paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() string {
	h, _ := auth.HashPassword("chirpy-dummy-password")
	return h
})

// ClampAccessTTL converts a requested lifetime in seconds to a duration in
// (0, limit]. Non-positive requests get limit.
func ClampAccessTTL(requestedSeconds int, limit time.Duration) time.Duration {
	if requestedSeconds <= 0 {
		return limit
	}
	if int64(requestedSeconds) > int64(limit/time.Second) {
		return limit
	}
	return time.Duration(requestedSeconds) * time.Second
}

// Login verifies credentials and mints an access token plus a persisted
// refresh token. Unknown email and wrong password are indistinguishable.
func (s *SessionService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.Email == "" {
		return nil, common.NotFound("Missing email")
	}
	if in.Password == "" {
		return nil, common.NotFound("Missing password")
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(in.Password, dummyHash())
			return nil, common.Unauthenticated(common.MsgIncorrectCredentials)
		}
		return nil, common.Internal(err)
	}
	if !s.hasher.Verify(in.Password, user.HashedPassword) {
		return nil, common.Unauthenticated(common.MsgIncorrectCredentials)
	}

	access, err := auth.GenerateToken(user.ID.String(), s.jwtSecret, ClampAccessTTL(in.ExpiresInSeconds, s.accessTTL))
	if err != nil {
		return nil, common.Internal(err)
	}
	refresh, err := s.refresh.Issue(ctx, user.ID)
	if err != nil {
		return nil, common.Internal(err)
	}

	s.logger.Debug(ctx, "user logged in", "user_id", user.ID)
	return &LoginResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh mints a new access token at the default lifetime. The refresh
// token itself is not rotated.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.refresh.Resolve(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrUnauthenticated) {
			return "", err
		}
		return "", common.Internal(err)
	}

	access, err := auth.GenerateToken(userID.String(), s.jwtSecret, s.accessTTL)
	if err != nil {
		return "", common.Internal(err)
	}
	return access, nil
}

// Revoke ends the session behind refreshToken. Access tokens already minted
// stay valid until they expire.
func (s *SessionService) Revoke(ctx context.Context, refreshToken string) error {
	if err := s.refresh.Revoke(ctx, refreshToken); err != nil {
		return common.Internal(err)
	}
	return nil
}

// Authenticate resolves the user id from an Authorization header value
// carrying a bearer access token.
func (s *SessionService) Authenticate(authorization string) (uuid.UUID, error) {
	token, err := auth.ExtractCredential(authorization, common.SchemeBearer)
	if err != nil {
		return uuid.Nil, err
	}
	return s.AuthenticateToken(token)
}

// AuthenticateToken validates a bare access token.
func (s *SessionService) AuthenticateToken(token string) (uuid.UUID, error) {
	sub, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, common.Unauthenticated(common.MsgInvalidAccessToken)
	}
	return id, nil
}

package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/chirpy/internal/common"
	"github.com/dmitrijs2005/chirpy/internal/dbx"
	"github.com/dmitrijs2005/chirpy/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, created_at, updated_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query, t.Token, t.UserID, t.CreatedAt, t.UpdatedAt, t.ExpiresAt); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindWithUser(ctx context.Context, token string) (*models.RefreshToken, *models.User, error) {
	query := `
		SELECT rt.token, rt.user_id, rt.created_at, rt.updated_at, rt.expires_at, rt.revoked_at,
		       u.id, u.email, u.hashed_password, u.is_chirpy_red, u.created_at, u.updated_at
		FROM refresh_tokens rt
		JOIN users u ON u.id = rt.user_id
		WHERE rt.token = $1
	`
	var (
		t         models.RefreshToken
		u         models.User
		revokedAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&t.Token, &t.UserID, &t.CreatedAt, &t.UpdatedAt, &t.ExpiresAt, &revokedAt,
		&u.ID, &u.Email, &u.HashedPassword, &u.IsChirpyRed, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, common.ErrorNotFound
		}
		return nil, nil, fmt.Errorf("db error: %w", err)
	}
	if revokedAt.Valid {
		at := revokedAt.Time
		t.RevokedAt = &at
	}
	return &t, &u, nil
}

// Revoke is a single conditional update so that concurrent revokes cannot
// move revoked_at once it is set.
func (r *PostgresRepository) Revoke(ctx context.Context, token string, at time.Time) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = $2, updated_at = $2
		WHERE token = $1 AND revoked_at IS NULL
	`
	if _, err := r.db.ExecContext(ctx, query, token, at); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

package chirps

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/chirpy/internal/common"
	"github.com/dmitrijs2005/chirpy/internal/dbx"
	"github.com/dmitrijs2005/chirpy/internal/server/models"
)

const chirpColumns = `id, body, user_id, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanChirp(s scanner) (*models.Chirp, error) {
	c := &models.Chirp{}
	if err := s.Scan(&c.ID, &c.Body, &c.UserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID uuid.UUID, body string) (*models.Chirp, error) {
	query := `
		INSERT INTO chirps (id, body, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + chirpColumns

	c, err := scanChirp(r.db.QueryRowContext(ctx, query, uuid.New(), body, userID))
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Chirp, error) {
	query := `SELECT ` + chirpColumns + ` FROM chirps WHERE id = $1`

	c, err := scanChirp(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]models.Chirp, error) {
	query := `SELECT ` + chirpColumns + ` FROM chirps`
	args := []any{}
	if filter.AuthorID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *filter.AuthorID)
	}
	if filter.Desc {
		query += ` ORDER BY created_at DESC, id`
	} else {
		query += ` ORDER BY created_at ASC, id`
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Chirp, 0)
	for rows.Next() {
		c, err := scanChirp(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM chirps WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

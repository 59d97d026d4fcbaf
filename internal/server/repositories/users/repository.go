// Package users declares the storage contract for user accounts and its
// PostgreSQL implementation.
package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/chirpy/internal/server/models"
)

type Repository interface {
	// Create inserts a user. A taken email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, email, hashedPassword string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// Update overwrites email and password hash and bumps updated_at.
	Update(ctx context.Context, id uuid.UUID, email, hashedPassword string) (*models.User, error)
	UpgradeToChirpyRed(ctx context.Context, id uuid.UUID) error
	// DeleteAll removes every user; chirps and refresh tokens cascade.
	DeleteAll(ctx context.Context) error
}

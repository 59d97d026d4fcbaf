// Package chirps declares the storage contract for chirps and its
// PostgreSQL implementation.
package chirps

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/chirpy/internal/server/models"
)

// ListFilter narrows and orders List. A nil AuthorID lists everyone.
type ListFilter struct {
	AuthorID *uuid.UUID
	Desc     bool
}

type Repository interface {
	Create(ctx context.Context, userID uuid.UUID, body string) (*models.Chirp, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Chirp, error)
	// List orders by created_at, ascending unless filter.Desc.
	List(ctx context.Context, filter ListFilter) ([]models.Chirp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

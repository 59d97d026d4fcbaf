package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. HashedPassword holds a bcrypt hash or the sentinel
// "unset"; it is never serialised to clients.
type User struct {
	ID             uuid.UUID
	Email          string
	HashedPassword string
	IsChirpyRed    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

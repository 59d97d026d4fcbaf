package httpapi

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/chirpy/internal/server/models"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email            string          `json:"email"`
	Password         string          `json:"password"`
	ExpiresInSeconds json.RawMessage `json:"expiresInSeconds"`
}

// requestedTTL reads expiresInSeconds leniently. Anything that is not a
// positive integer yields 0, which the session service treats as the default.
func (r loginRequest) requestedTTL() int {
	if len(r.ExpiresInSeconds) == 0 {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(r.ExpiresInSeconds, &n); err != nil {
		return 0
	}
	v, err := n.Int64()
	if err != nil || v <= 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

type chirpRequest struct {
	Body string `json:"body"`
}

type userResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	IsChirpyRed bool      `json:"isChirpyRed"`
}

type loginResponse struct {
	userResponse
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type chirpResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Body      string    `json:"body"`
	UserID    uuid.UUID `json:"userId"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		IsChirpyRed: u.IsChirpyRed,
	}
}

func toChirpResponse(c *models.Chirp) chirpResponse {
	return chirpResponse{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Body:      c.Body,
		UserID:    c.UserID,
	}
}

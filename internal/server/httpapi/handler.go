// Package httpapi is the REST surface of the chirpy server, built on gin.
// Handlers stay thin: decode, call a service, translate its common.Error.
package httpapi

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/chirpy/internal/logging"
	"github.com/dmitrijs2005/chirpy/internal/server/metrics"
	"github.com/dmitrijs2005/chirpy/internal/server/models"
	"github.com/dmitrijs2005/chirpy/internal/server/services"
)

type SessionService interface {
	Login(ctx context.Context, in services.LoginInput) (*services.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Revoke(ctx context.Context, refreshToken string) error
	Authenticate(authorization string) (uuid.UUID, error)
}

type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Update(ctx context.Context, userID uuid.UUID, email, password string) (*models.User, error)
}

type ChirpService interface {
	Create(ctx context.Context, userID uuid.UUID, body string) (*models.Chirp, error)
	List(ctx context.Context, authorID *uuid.UUID, sort string) ([]models.Chirp, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Chirp, error)
	Delete(ctx context.Context, userID, chirpID uuid.UUID) error
}

type WebhookService interface {
	HandlePolka(ctx context.Context, authorization string, ev services.PolkaEvent) error
}

type AdminService interface {
	Reset(ctx context.Context) error
	Ready(ctx context.Context) error
}

// Handler holds the services behind every route.
type Handler struct {
	sessions SessionService
	users    UserService
	chirps   ChirpService
	webhooks WebhookService
	admin    AdminService
	metrics  *metrics.Metrics
	logger   logging.Logger
}

type Deps struct {
	Sessions SessionService
	Users    UserService
	Chirps   ChirpService
	Webhooks WebhookService
	Admin    AdminService
	Metrics  *metrics.Metrics
	Logger   logging.Logger
}

func NewHandler(d Deps) *Handler {
	l := d.Logger
	if l == nil {
		l = logging.Nop()
	}
	m := d.Metrics
	if m == nil {
		m = metrics.New()
	}
	return &Handler{
		sessions: d.Sessions,
		users:    d.Users,
		chirps:   d.Chirps,
		webhooks: d.Webhooks,
		admin:    d.Admin,
		metrics:  m,
		logger:   l.With("module", "http"),
	}
}

package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/chirpy/internal/common"
	"github.com/dmitrijs2005/chirpy/internal/logging"
	"github.com/dmitrijs2005/chirpy/internal/server/auth"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/repomanager"
)

// EventUserUpgraded is the only payment event that changes state.
const EventUserUpgraded = "user.upgraded"

// PolkaEvent is the payload posted by the payment provider.
type PolkaEvent struct {
	Event string `json:"event"`
	Data  struct {
		UserID string `json:"userId"`
	} `json:"data"`
}

type WebhookService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	apiKey      []byte
	logger      logging.Logger
}

func NewWebhookService(db *sql.DB, m repomanager.RepositoryManager, apiKey string, l logging.Logger) *WebhookService {
	return &WebhookService{
		db:          db,
		repomanager: m,
		apiKey:      []byte(apiKey),
		logger:      l.With("module", "webhooks"),
	}
}

func (s *WebhookService) checkKey(authorization string) error {
	key, err := auth.ExtractCredential(authorization, common.SchemeAPIKey)
	if err != nil {
		return err
	}
	if len(s.apiKey) == 0 || subtle.ConstantTimeCompare([]byte(key), s.apiKey) != 1 {
		return common.Unauthenticated("Invalid API key")
	}
	return nil
}

// HandlePolka authenticates the webhook and applies it. Events other than
// user.upgraded are acknowledged and ignored.
func (s *WebhookService) HandlePolka(ctx context.Context, authorization string, ev PolkaEvent) error {
	if err := s.checkKey(authorization); err != nil {
		return err
	}
	if ev.Event != EventUserUpgraded {
		return nil
	}

	id, err := uuid.Parse(ev.Data.UserID)
	if err != nil {
		return common.NotFound("User not found")
	}
	if err := s.repomanager.Users(s.db).UpgradeToChirpyRed(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.NotFound("User not found")
		}
		return common.Internal(err)
	}

	s.logger.Info(ctx, "user upgraded to chirpy red", "user_id", id)
	return nil
}

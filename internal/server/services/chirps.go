package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/chirpy/internal/common"
	"github.com/dmitrijs2005/chirpy/internal/dbx"
	"github.com/dmitrijs2005/chirpy/internal/server/models"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/chirps"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/repomanager"
)

// MaxChirpLength is counted in characters, not bytes.
const MaxChirpLength = 140

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

type ChirpService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewChirpService(db *sql.DB, m repomanager.RepositoryManager) *ChirpService {
	return &ChirpService{db: db, repomanager: m}
}

func (s *ChirpService) Create(ctx context.Context, userID uuid.UUID, body string) (*models.Chirp, error) {
	if strings.TrimSpace(body) == "" {
		return nil, common.BadRequest("Chirp body is required")
	}
	if utf8.RuneCountInString(body) > MaxChirpLength {
		return nil, common.BadRequest(fmt.Sprintf("Chirp is too long. Max length is %d", MaxChirpLength))
	}

	c, err := s.repomanager.Chirps(s.db).Create(ctx, userID, body)
	if err != nil {
		return nil, common.Internal(err)
	}
	return c, nil
}

// List returns chirps by createdAt; sort is "asc" (default) or "desc", any
// other value falls back to ascending.
func (s *ChirpService) List(ctx context.Context, authorID *uuid.UUID, sort string) ([]models.Chirp, error) {
	list, err := s.repomanager.Chirps(s.db).List(ctx, chirps.ListFilter{
		AuthorID: authorID,
		Desc:     sort == SortDesc,
	})
	if err != nil {
		return nil, common.Internal(err)
	}
	return list, nil
}

func (s *ChirpService) Get(ctx context.Context, id uuid.UUID) (*models.Chirp, error) {
	c, err := s.repomanager.Chirps(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NotFound("Missing chirp")
		}
		return nil, common.Internal(err)
	}
	return c, nil
}

// Delete removes chirpID if userID wrote it. Acting on someone else's chirp
// is Forbidden, not Unauthenticated.
func (s *ChirpService) Delete(ctx context.Context, userID, chirpID uuid.UUID) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Chirps(tx)

		c, err := repo.GetByID(ctx, chirpID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.NotFound("Missing chirp")
			}
			return err
		}
		if c.UserID != userID {
			return common.Forbidden("You can only delete your own chirps")
		}
		if err := repo.Delete(ctx, chirpID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.NotFound("Missing chirp")
			}
			return err
		}
		return nil
	})
	if err != nil {
		var ce *common.Error
		if errors.As(err, &ce) {
			return err
		}
		return common.Internal(err)
	}
	return nil
}

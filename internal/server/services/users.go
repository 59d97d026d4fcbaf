package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/chirpy/internal/common"
	"github.com/dmitrijs2005/chirpy/internal/dbx"
	"github.com/dmitrijs2005/chirpy/internal/server/auth"
	"github.com/dmitrijs2005/chirpy/internal/server/models"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/repomanager"
)

// UserService creates and updates accounts.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher) *UserService {
	return &UserService{db: db, repomanager: m, hasher: hasher}
}

func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, common.BadRequest("Missing required fields")
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.BadRequest("Password is not acceptable")
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, email, hashed)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.BadRequest("Email is already registered")
		}
		return nil, common.Internal(err)
	}
	return u, nil
}

// Update changes the email and/or password of userID. Empty fields keep
// their current value; at least one must be set.
func (s *UserService) Update(ctx context.Context, userID uuid.UUID, email, password string) (*models.User, error) {
	if email == "" && password == "" {
		return nil, common.BadRequest("Missing required fields")
	}

	var hashed string
	if password != "" {
		h, err := s.hasher.Hash(password)
		if err != nil {
			return nil, common.BadRequest("Password is not acceptable")
		}
		hashed = h
	}

	var updated *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		current, err := repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if email == "" {
			email = current.Email
		}
		if hashed == "" {
			hashed = current.HashedPassword
		}

		updated, err = repo.Update(ctx, userID, email, hashed)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return nil, common.NotFound("User not found")
		case errors.Is(err, common.ErrorAlreadyExists):
			return nil, common.BadRequest("Email is already registered")
		}
		return nil, common.Internal(err)
	}
	return updated, nil
}

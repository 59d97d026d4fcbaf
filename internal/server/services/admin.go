package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/chirpy/internal/common"
	"github.com/dmitrijs2005/chirpy/internal/logging"
	"github.com/dmitrijs2005/chirpy/internal/server/config"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/repomanager"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// AdminService backs the /admin endpoints and readiness.
type AdminService struct {
	db          *sql.DB
	pinger      Pinger
	repomanager repomanager.RepositoryManager
	platform    string
	logger      logging.Logger
}

func NewAdminService(db *sql.DB, m repomanager.RepositoryManager, platform string, l logging.Logger) *AdminService {
	s := &AdminService{
		db:          db,
		repomanager: m,
		platform:    platform,
		logger:      l.With("module", "admin"),
	}
	if db != nil {
		s.pinger = db
	}
	return s
}

// Reset deletes every user, and through cascades every chirp and refresh
// token. Only allowed on the dev platform.
func (s *AdminService) Reset(ctx context.Context) error {
	if s.platform != config.PlatformDev {
		return common.Forbidden("Reset is only allowed in dev environment")
	}
	if err := s.repomanager.Users(s.db).DeleteAll(ctx); err != nil {
		return common.Internal(err)
	}
	s.logger.Warn(ctx, "all users deleted")
	return nil
}

// Ready reports whether the database answers.
func (s *AdminService) Ready(ctx context.Context) error {
	if s.pinger == nil {
		return common.Internal(sql.ErrConnDone)
	}
	if err := s.pinger.PingContext(ctx); err != nil {
		return common.Internal(err)
	}
	return nil
}

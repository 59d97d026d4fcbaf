package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/chirpy/internal/dbx"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/chirps"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same call
// works on the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Chirps(db dbx.DBTX) chirps.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}

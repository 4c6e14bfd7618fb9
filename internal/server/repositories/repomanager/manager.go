package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/passlocker/internal/dbx"
	"github.com/dmitrijs2005/passlocker/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// path serves both plain connections and transactions.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

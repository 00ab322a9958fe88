package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/exercisetracker/internal/dbx"
	"github.com/dmitrijs2005/exercisetracker/internal/server/repositories/logentries"
	"github.com/dmitrijs2005/exercisetracker/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to either a *sql.DB or a
// *sql.Tx, so services decide the transaction scope.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	LogEntries(db dbx.DBTX) logentries.Repository
}

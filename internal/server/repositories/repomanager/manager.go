// Package repomanager abstracts construction of the repository set so that
// services stay decoupled from the concrete storage backend.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/vibesbook/backend/internal/dbx"
	"github.com/vibesbook/backend/internal/server/repositories/media"
	"github.com/vibesbook/backend/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX
// (either the shared *sql.DB or a transaction) and owns schema migrations.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Media(db dbx.DBTX) media.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}

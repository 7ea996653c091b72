// Package repository holds the SQL for the account and message tables.
//
// Every method runs its statements in autocommit on a connection borrowed from
// the pool for the duration of the statement. Absence is reported as
// errs.ErrNotFound; storage failures are logged here and returned wrapped so the
// caller can tell the two apart.
package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
)

// DBTX is the subset of *sql.DB the repositories use.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// logStorageError records a failed statement at the store boundary.
func logStorageError(log *zerolog.Logger, table, operation string, err error) {
	log.Error().
		Err(err).
		Str("table", table).
		Str("operation", operation).
		Msg("storage operation failed")
}

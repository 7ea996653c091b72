package repository

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var messageRowColumns = []string{"message_id", "posted_by", "message_text", "time_posted_epoch"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *zerolog.Logger) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	log := zerolog.Nop()
	return db, mock, &log
}

package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/go-socialmedia/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrCode(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	fk := &pgconn.PgError{Code: "23503"}

	assert.Equal(t, UniqueViolation, ErrCode(unique))
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("register account: %w", unique)))
	assert.Equal(t, ForeignKeyViolation, ErrCode(ConvertPgError(fk)))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
	assert.Equal(t, Other, ErrCode(&pgconn.PgError{Code: "XX000"}))

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("whatever"))
}

func TestGenerateErrorCode(t *testing.T) {
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", generateErrorCode("account", UniqueViolation))
	assert.Equal(t, "MESSAGE_NOT_FOUND", generateErrorCode("messages", ForeignKeyViolation))
	assert.Equal(t, "RECORD_INVALID", generateErrorCode("", CheckViolation))
	assert.Equal(t, "RECORD_ERROR", generateErrorCode("", Other))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "username", extractColumnForUniqueViolation("account_username_key"))
	assert.Equal(t, "username", extractColumnForUniqueViolation("unique_account_username"))
	assert.Equal(t, "", extractColumnForUniqueViolation("account_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}

func TestHumanizeText(t *testing.T) {
	assert.Equal(t, "Message Text", humanizeText("message_text"))
	assert.Equal(t, "", humanizeText(""))
}

func TestHandleError(t *testing.T) {
	t.Run("http errors pass through", func(t *testing.T) {
		in := errs.NewUnauthorizedError("nope", true)
		require.Same(t, in, HandleError(in))
	})

	t.Run("unique violation", func(t *testing.T) {
		req := require.New(t)
		err := HandleError(fmt.Errorf("register account: %w", &pgconn.PgError{
			Code:           "23505",
			TableName:      "account",
			ConstraintName: "account_username_key",
		}))

		var httpErr *errs.HTTPError
		req.ErrorAs(err, &httpErr)
		req.Equal(http.StatusBadRequest, httpErr.Status)
		req.Equal("ACCOUNT_ALREADY_EXISTS", httpErr.Code)
		req.Equal("A Account with this Username already exists", httpErr.Message)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		req := require.New(t)
		err := HandleError(&pgconn.PgError{Code: "23503", TableName: "message", ColumnName: "posted_by"})

		var httpErr *errs.HTTPError
		req.ErrorAs(err, &httpErr)
		req.Equal(http.StatusBadRequest, httpErr.Status)
		req.Equal("MESSAGE_NOT_FOUND", httpErr.Code)
	})

	t.Run("not null violation carries the field", func(t *testing.T) {
		req := require.New(t)
		err := HandleError(&pgconn.PgError{Code: "23502", TableName: "message", ColumnName: "message_text"})

		var httpErr *errs.HTTPError
		req.ErrorAs(err, &httpErr)
		req.Len(httpErr.Errors, 1)
		req.Equal("message_text", httpErr.Errors[0].Field)
	})

	t.Run("other postgres errors are internal", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(&pgconn.PgError{Code: "53300"}), &httpErr)
		require.Equal(t, http.StatusInternalServerError, httpErr.Status)
	})

	t.Run("unmapped not found falls back to 404", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(fmt.Errorf("get: %w", errs.ErrNotFound)), &httpErr)
		require.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("unknown error hides details", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(errors.New("dial tcp 10.0.0.1:5432: refused")), &httpErr)
		require.Equal(t, http.StatusInternalServerError, httpErr.Status)
		require.NotContains(t, httpErr.Message, "10.0.0.1")
	})
}

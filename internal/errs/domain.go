package errs

import (
	"errors"
	"fmt"
)

// Domain errors returned by the repository and service layers.
//
// They are plain sentinels so callers can branch with errors.Is. The handler
// layer is the only place that turns them into HTTP responses.
var (
	// ErrNotFound means the row that was asked for does not exist.
	// It is never used for storage failures.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken means another account already owns the username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUnknownSender means posted_by does not reference an existing account.
	ErrUnknownSender = errors.New("posted_by does not reference an existing account")

	// ErrInvalidCredentials means no account matches the username/password pair.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports a business rule violated by caller input.
// It is produced before any store access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

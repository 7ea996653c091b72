package handler

import (
	"errors"

	"github.com/deppfellow/go-socialmedia/internal/errs"
)

var (
	codeAccountExists     = "ACCOUNT_ALREADY_EXISTS"
	codeAccountNotFound   = "ACCOUNT_NOT_FOUND"
	codeMessageNotFound   = "MESSAGE_NOT_FOUND"
	codeInvalidCredential = "INVALID_CREDENTIALS"
)

// toHTTPError maps domain errors from the services to client errors. Anything
// it does not recognise is returned unchanged and becomes a 500 in the global
// error handler.
//
// errs.ErrNotFound maps to 400 here because only write endpoints reach this
// with it; reads and deletes answer an absent message with an empty 200.
func toHTTPError(err error) error {
	var validationErr *errs.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return errs.ValidationFailed(validationErr)
	case errors.Is(err, errs.ErrUsernameTaken):
		return errs.NewBadRequestError("Username already exists", true, &codeAccountExists, nil)
	case errors.Is(err, errs.ErrUnknownSender):
		return errs.NewBadRequestError("posted_by does not reference an existing account", true, &codeAccountNotFound, nil)
	case errors.Is(err, errs.ErrNotFound):
		return errs.NewBadRequestError("Message not found", true, &codeMessageNotFound, nil)
	case errors.Is(err, errs.ErrInvalidCredentials):
		unauthorized := errs.NewUnauthorizedError("Invalid username or password", true)
		unauthorized.Code = codeInvalidCredential
		return unauthorized
	default:
		return err
	}
}

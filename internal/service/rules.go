package service

import (
	"fmt"

	"github.com/deppfellow/go-socialmedia/internal/errs"
	"github.com/deppfellow/go-socialmedia/internal/model"
	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches rule parsing.
var validate = validator.New()

var (
	passwordRule    = fmt.Sprintf("min=%d", model.MinPasswordLength)
	messageTextRule = fmt.Sprintf("max=%d", model.MaxMessageTextLength)
)

// validatePassword requires at least MinPasswordLength characters.
func validatePassword(password string) error {
	if err := validate.Var(password, passwordRule); err != nil {
		return errs.NewValidationError("password", fmt.Sprintf("must be at least %d characters", model.MinPasswordLength))
	}
	return nil
}

func validateUsername(username string) error {
	if model.IsBlank(username) {
		return errs.NewValidationError("username", "must not be blank")
	}
	return nil
}

// validateMessageText applies the same rule at post and update time:
// non-blank and at most MaxMessageTextLength characters.
func validateMessageText(text string) error {
	if model.IsBlank(text) {
		return errs.NewValidationError("message_text", "must not be blank")
	}
	if err := validate.Var(text, messageTextRule); err != nil {
		return errs.NewValidationError("message_text", fmt.Sprintf("must not exceed %d characters", model.MaxMessageTextLength))
	}
	return nil
}

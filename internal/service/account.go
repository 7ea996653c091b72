package service

import (
	"context"
	"errors"

	"github.com/deppfellow/go-socialmedia/internal/errs"
	"github.com/deppfellow/go-socialmedia/internal/model"
	"github.com/rs/zerolog"
)

// AccountService handles registration and login against an AccountRepository.
type AccountService struct {
	accounts AccountRepository
	log      *zerolog.Logger
}

func NewAccountService(accounts AccountRepository, log *zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, log: log}
}

// CreateAccount registers candidate after checking the password length, that
// the username is not blank, and that the username is free.
//
// The count check is a fast path only. Two concurrent registrations can both
// see a count of zero; the unique index on account.username then rejects the
// second insert, which the repository reports as errs.ErrUsernameTaken.
func (s *AccountService) CreateAccount(ctx context.Context, candidate model.Account) (*model.Account, error) {
	if err := validatePassword(candidate.Password); err != nil {
		return nil, err
	}
	if err := validateUsername(candidate.Username); err != nil {
		return nil, err
	}

	count, err := s.accounts.CountByUsername(ctx, candidate.Username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errs.ErrUsernameTaken
	}

	account, err := s.accounts.Register(ctx, candidate)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("account_id", account.AccountID).
		Str("username", account.Username).
		Msg("account registered")

	return account, nil
}

// Login returns the account whose username and password both match exactly.
// There is no input validation: empty credentials simply never match.
func (s *AccountService) Login(ctx context.Context, credentials model.Account) (*model.Account, error) {
	account, err := s.accounts.Login(ctx, credentials.Username, credentials.Password)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

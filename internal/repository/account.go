package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/go-socialmedia/internal/errs"
	"github.com/deppfellow/go-socialmedia/internal/model"
	"github.com/deppfellow/go-socialmedia/internal/sqlerr"
	"github.com/rs/zerolog"
)

const accountTable = "account"

const (
	countAccountsByUsernameQuery = `SELECT COUNT(account_id) FROM account WHERE username = $1`

	loginQuery = `SELECT account_id, username, password FROM account WHERE username = $1 AND password = $2`

	registerQuery = `INSERT INTO account (username, password) VALUES ($1, $2) RETURNING account_id`
)

// AccountRepository reads and writes the account table.
type AccountRepository struct {
	db  DBTX
	log *zerolog.Logger
}

func NewAccountRepository(db DBTX, log *zerolog.Logger) *AccountRepository {
	return &AccountRepository{db: db, log: log}
}

// CountByUsername returns how many accounts have exactly this username.
func (r *AccountRepository) CountByUsername(ctx context.Context, username string) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countAccountsByUsernameQuery, username).Scan(&count); err != nil {
		logStorageError(r.log, accountTable, "count_by_username", err)
		return 0, fmt.Errorf("count accounts by username: %w", err)
	}
	return count, nil
}

// Login returns the account matching both username and password.
func (r *AccountRepository) Login(ctx context.Context, username, password string) (*model.Account, error) {
	var account model.Account
	err := r.db.QueryRowContext(ctx, loginQuery, username, password).
		Scan(&account.AccountID, &account.Username, &account.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		logStorageError(r.log, accountTable, "login", err)
		return nil, fmt.Errorf("login: %w", err)
	}
	return &account, nil
}

// Register inserts the account and returns it with its assigned id.
// A unique violation on username is returned as errs.ErrUsernameTaken.
func (r *AccountRepository) Register(ctx context.Context, account model.Account) (*model.Account, error) {
	err := r.db.QueryRowContext(ctx, registerQuery, account.Username, account.Password).Scan(&account.AccountID)
	if sqlerr.IsUniqueViolation(err) {
		r.log.Warn().Str("username", account.Username).Msg("username taken at insert time")
		return nil, errs.ErrUsernameTaken
	}
	if err != nil {
		logStorageError(r.log, accountTable, "register", err)
		return nil, fmt.Errorf("register account: %w", err)
	}
	return &account, nil
}

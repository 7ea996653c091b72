package service

import (
	"context"

	"github.com/deppfellow/go-socialmedia/internal/model"
)

// AccountRepository is the account storage used by AccountService.
type AccountRepository interface {
	CountByUsername(ctx context.Context, username string) (int, error)
	Login(ctx context.Context, username, password string) (*model.Account, error)
	Register(ctx context.Context, account model.Account) (*model.Account, error)
}

// MessageRepository is the message storage used by MessageService.
type MessageRepository interface {
	CountAccountByID(ctx context.Context, accountID int) (int, error)
	CountMessageByID(ctx context.Context, messageID int) (int, error)
	Insert(ctx context.Context, message model.Message) (*model.Message, error)
	ListAll(ctx context.Context) ([]model.Message, error)
	ListBySender(ctx context.Context, accountID int) ([]model.Message, error)
	GetByID(ctx context.Context, messageID int) (*model.Message, error)
	Update(ctx context.Context, messageID int, text string) (*model.Message, error)
	Delete(ctx context.Context, messageID int) (*model.Message, error)
}

// MessageCache is an optional read-through cache for single messages.
// Fill must not overwrite an entry written by Invalidate.
type MessageCache interface {
	Get(ctx context.Context, messageID int) (*model.Message, bool, error)
	Fill(ctx context.Context, message *model.Message) error
	Invalidate(ctx context.Context, messageID int) error
}

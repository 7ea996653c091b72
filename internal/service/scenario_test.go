package service_test

import (
	"context"
	"sort"
	"testing"

	"github.com/deppfellow/go-socialmedia/internal/errs"
	"github.com/deppfellow/go-socialmedia/internal/model"
	"github.com/deppfellow/go-socialmedia/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// memStore keeps accounts and messages in maps with serial ids, standing in
// for the two tables.
type memStore struct {
	accounts      map[int]model.Account
	messages      map[int]model.Message
	nextAccountID int
	nextMessageID int
}

func newMemStore() *memStore {
	return &memStore{
		accounts:      map[int]model.Account{},
		messages:      map[int]model.Message{},
		nextAccountID: 1,
		nextMessageID: 1,
	}
}

func (m *memStore) CountByUsername(_ context.Context, username string) (int, error) {
	n := 0
	for _, a := range m.accounts {
		if a.Username == username {
			n++
		}
	}
	return n, nil
}

func (m *memStore) Login(_ context.Context, username, password string) (*model.Account, error) {
	for _, a := range m.accounts {
		if a.Username == username && a.Password == password {
			return &a, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *memStore) Register(_ context.Context, account model.Account) (*model.Account, error) {
	account.AccountID = m.nextAccountID
	m.nextAccountID++
	m.accounts[account.AccountID] = account
	return &account, nil
}

func (m *memStore) CountAccountByID(_ context.Context, accountID int) (int, error) {
	if _, ok := m.accounts[accountID]; ok {
		return 1, nil
	}
	return 0, nil
}

func (m *memStore) CountMessageByID(_ context.Context, messageID int) (int, error) {
	if _, ok := m.messages[messageID]; ok {
		return 1, nil
	}
	return 0, nil
}

func (m *memStore) Insert(_ context.Context, message model.Message) (*model.Message, error) {
	message.MessageID = m.nextMessageID
	m.nextMessageID++
	m.messages[message.MessageID] = message
	return &message, nil
}

func (m *memStore) sorted(keep func(model.Message) bool) []model.Message {
	out := []model.Message{}
	for _, msg := range m.messages {
		if keep(msg) {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MessageID < out[j].MessageID })
	return out
}

func (m *memStore) ListAll(context.Context) ([]model.Message, error) {
	return m.sorted(func(model.Message) bool { return true }), nil
}

func (m *memStore) ListBySender(_ context.Context, accountID int) ([]model.Message, error) {
	return m.sorted(func(msg model.Message) bool { return msg.PostedBy == accountID }), nil
}

func (m *memStore) GetByID(_ context.Context, messageID int) (*model.Message, error) {
	msg, ok := m.messages[messageID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &msg, nil
}

func (m *memStore) Update(_ context.Context, messageID int, text string) (*model.Message, error) {
	msg, ok := m.messages[messageID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	msg.MessageText = text
	m.messages[messageID] = msg
	return &msg, nil
}

func (m *memStore) Delete(_ context.Context, messageID int) (*model.Message, error) {
	msg, ok := m.messages[messageID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	delete(m.messages, messageID)
	return &msg, nil
}

func TestAccountAndMessageLifecycle(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := zerolog.Nop()

	store := newMemStore()
	accounts := service.NewAccountService(store, &log)
	messages := service.NewMessageService(store, nil, &log)

	alice, err := accounts.CreateAccount(ctx, model.Account{Username: "alice", Password: "pass1"})
	req.NoError(err)
	req.Equal(1, alice.AccountID)

	_, err = accounts.CreateAccount(ctx, model.Account{Username: "alice", Password: "other"})
	req.ErrorIs(err, errs.ErrUsernameTaken)

	loggedIn, err := accounts.Login(ctx, model.Account{Username: "alice", Password: "pass1"})
	req.NoError(err)
	req.Equal(alice, loggedIn)

	posted, err := messages.PostMessage(ctx, model.Message{PostedBy: 1, MessageText: "hi", TimePostedEpoch: 1000})
	req.NoError(err)
	req.Equal(model.Message{MessageID: 1, PostedBy: 1, MessageText: "hi", TimePostedEpoch: 1000}, *posted)

	fromAlice, err := messages.GetMessagesFromSender(ctx, 1)
	req.NoError(err)
	req.Equal([]model.Message{*posted}, fromAlice)

	updated, err := messages.UpdateMessage(ctx, 1, "bye")
	req.NoError(err)
	req.Equal("bye", updated.MessageText)
	req.Equal(posted.PostedBy, updated.PostedBy)
	req.Equal(posted.TimePostedEpoch, updated.TimePostedEpoch)

	deleted, err := messages.DeleteMessage(ctx, 1)
	req.NoError(err)
	req.Equal(*updated, *deleted)

	all, err := messages.GetAllMessages(ctx)
	req.NoError(err)
	req.NotNil(all)
	req.Empty(all)

	_, err = messages.DeleteMessage(ctx, 1)
	req.ErrorIs(err, errs.ErrNotFound)
}

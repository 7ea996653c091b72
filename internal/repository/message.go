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

const messageTable = "message"

const messageColumns = `message_id, posted_by, message_text, time_posted_epoch`

const (
	countAccountByIDQuery = `SELECT COUNT(account_id) FROM account WHERE account_id = $1`

	countMessageByIDQuery = `SELECT COUNT(message_id) FROM message WHERE message_id = $1`

	insertMessageQuery = `INSERT INTO message (posted_by, message_text, time_posted_epoch) VALUES ($1, $2, $3) RETURNING message_id`

	listMessagesQuery = `SELECT ` + messageColumns + ` FROM message ORDER BY message_id`

	listMessagesBySenderQuery = `SELECT ` + messageColumns + ` FROM message WHERE posted_by = $1 ORDER BY message_id`

	getMessageByIDQuery = `SELECT ` + messageColumns + ` FROM message WHERE message_id = $1`

	// The update returns the row it wrote, so there is no window for a
	// concurrent delete between the write and the read back.
	updateMessageQuery = `UPDATE message SET message_text = $1 WHERE message_id = $2 RETURNING ` + messageColumns

	deleteMessageQuery = `DELETE FROM message WHERE message_id = $1 RETURNING ` + messageColumns
)

// MessageRepository reads and writes the message table.
type MessageRepository struct {
	db  DBTX
	log *zerolog.Logger
}

func NewMessageRepository(db DBTX, log *zerolog.Logger) *MessageRepository {
	return &MessageRepository{db: db, log: log}
}

func scanMessage(row rowScanner) (*model.Message, error) {
	var m model.Message
	if err := row.Scan(&m.MessageID, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepository) count(ctx context.Context, operation, query string, id int) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		logStorageError(r.log, messageTable, operation, err)
		return 0, fmt.Errorf("%s: %w", operation, err)
	}
	return count, nil
}

// CountAccountByID returns how many accounts have this id. Used to check
// posted_by before inserting a message.
func (r *MessageRepository) CountAccountByID(ctx context.Context, accountID int) (int, error) {
	return r.count(ctx, "count_account_by_id", countAccountByIDQuery, accountID)
}

// CountMessageByID returns how many messages have this id.
func (r *MessageRepository) CountMessageByID(ctx context.Context, messageID int) (int, error) {
	return r.count(ctx, "count_message_by_id", countMessageByIDQuery, messageID)
}

// Insert stores the message and returns it with its assigned id.
func (r *MessageRepository) Insert(ctx context.Context, message model.Message) (*model.Message, error) {
	err := r.db.QueryRowContext(ctx, insertMessageQuery, message.PostedBy, message.MessageText, message.TimePostedEpoch).
		Scan(&message.MessageID)
	if sqlerr.IsForeignKeyViolation(err) {
		return nil, errs.ErrUnknownSender
	}
	if err != nil {
		logStorageError(r.log, messageTable, "insert", err)
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return &message, nil
}

func (r *MessageRepository) list(ctx context.Context, operation, query string, args ...any) ([]model.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logStorageError(r.log, messageTable, operation, err)
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	messages := make([]model.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			logStorageError(r.log, messageTable, operation, err)
			return nil, fmt.Errorf("%s: scan: %w", operation, err)
		}
		messages = append(messages, *m)
	}

	if err := rows.Err(); err != nil {
		logStorageError(r.log, messageTable, operation, err)
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return messages, nil
}

// ListAll returns every message. The slice is empty, never nil, when there
// are none.
func (r *MessageRepository) ListAll(ctx context.Context) ([]model.Message, error) {
	return r.list(ctx, "list_all", listMessagesQuery)
}

// ListBySender returns every message posted by accountID.
func (r *MessageRepository) ListBySender(ctx context.Context, accountID int) ([]model.Message, error) {
	return r.list(ctx, "list_by_sender", listMessagesBySenderQuery, accountID)
}

// single runs a query expected to return at most one message row.
func (r *MessageRepository) single(ctx context.Context, operation, query string, args ...any) (*model.Message, error) {
	m, err := scanMessage(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		logStorageError(r.log, messageTable, operation, err)
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return m, nil
}

// GetByID returns the message with this id.
func (r *MessageRepository) GetByID(ctx context.Context, messageID int) (*model.Message, error) {
	return r.single(ctx, "get_by_id", getMessageByIDQuery, messageID)
}

// Update sets message_text and returns the updated row.
func (r *MessageRepository) Update(ctx context.Context, messageID int, text string) (*model.Message, error) {
	return r.single(ctx, "update", updateMessageQuery, text, messageID)
}

// Delete removes the message and returns the row as it was before deletion.
func (r *MessageRepository) Delete(ctx context.Context, messageID int) (*model.Message, error) {
	return r.single(ctx, "delete", deleteMessageQuery, messageID)
}

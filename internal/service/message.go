package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-socialmedia/internal/errs"
	"github.com/deppfellow/go-socialmedia/internal/model"
	"github.com/rs/zerolog"
)

// MessageService implements message posting, reading, editing and deletion
// on top of a MessageRepository, with an optional MessageCache for reads by id.
type MessageService struct {
	messages MessageRepository
	cache    MessageCache
	log      *zerolog.Logger
}

// NewMessageService builds the service. cache may be nil.
func NewMessageService(messages MessageRepository, cache MessageCache, log *zerolog.Logger) *MessageService {
	return &MessageService{messages: messages, cache: cache, log: log}
}

// PostMessage validates the text, checks that posted_by is an existing
// account, then inserts.
func (s *MessageService) PostMessage(ctx context.Context, candidate model.Message) (*model.Message, error) {
	if err := validateMessageText(candidate.MessageText); err != nil {
		return nil, err
	}

	count, err := s.messages.CountAccountByID(ctx, candidate.PostedBy)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.ErrUnknownSender
	}

	return s.messages.Insert(ctx, candidate)
}

func (s *MessageService) GetAllMessages(ctx context.Context) ([]model.Message, error) {
	return s.messages.ListAll(ctx)
}

// GetMessagesFromSender does not check that senderID exists; an unknown
// sender has no messages.
func (s *MessageService) GetMessagesFromSender(ctx context.Context, senderID int) ([]model.Message, error) {
	return s.messages.ListBySender(ctx, senderID)
}

// GetMessageByID returns the message or errs.ErrNotFound. Cache failures are
// logged and fall through to the database.
func (s *MessageService) GetMessageByID(ctx context.Context, messageID int) (*model.Message, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, messageID)
		if err != nil {
			s.log.Warn().Err(err).Int("message_id", messageID).Msg("message cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	message, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	s.cacheFill(ctx, message)
	return message, nil
}

// UpdateMessage replaces message_text on an existing message. Only the text
// changes; id, posted_by and time_posted_epoch are left as stored.
func (s *MessageService) UpdateMessage(ctx context.Context, messageID int, text string) (*model.Message, error) {
	if err := validateMessageText(text); err != nil {
		return nil, err
	}

	count, err := s.messages.CountMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.ErrNotFound
	}

	if err := s.invalidate(ctx, messageID); err != nil {
		return nil, err
	}

	return s.messages.Update(ctx, messageID, text)
}

// DeleteMessage removes an existing message and returns what was deleted.
// A missing message is errs.ErrNotFound with no side effect. Like
// UpdateMessage, it fails without writing when the cache cannot be invalidated.
func (s *MessageService) DeleteMessage(ctx context.Context, messageID int) (*model.Message, error) {
	count, err := s.messages.CountMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.ErrNotFound
	}

	if err := s.invalidate(ctx, messageID); err != nil {
		return nil, err
	}

	return s.messages.Delete(ctx, messageID)
}

func (s *MessageService) cacheFill(ctx context.Context, message *model.Message) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Fill(ctx, message); err != nil {
		s.log.Warn().Err(err).Int("message_id", message.MessageID).Msg("message cache fill failed")
	}
}

// invalidate runs before every row write. A failure aborts the write.
func (s *MessageService) invalidate(ctx context.Context, messageID int) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Invalidate(ctx, messageID); err != nil {
		return fmt.Errorf("invalidate cached message %d: %w", messageID, err)
	}
	return nil
}

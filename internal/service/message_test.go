package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/deppfellow/go-socialmedia/internal/errs"
	"github.com/deppfellow/go-socialmedia/internal/mocks"
	"github.com/deppfellow/go-socialmedia/internal/model"
	"github.com/deppfellow/go-socialmedia/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type messageFixture struct {
	svc   *service.MessageService
	repo  *mocks.MockMessageRepository
	cache *mocks.MockMessageCache
}

func newMessageService(t *testing.T, withCache bool) messageFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := zerolog.Nop()

	f := messageFixture{repo: mocks.NewMockMessageRepository(ctrl)}
	if withCache {
		f.cache = mocks.NewMockMessageCache(ctrl)
		f.svc = service.NewMessageService(f.repo, f.cache, &log)
	} else {
		f.svc = service.NewMessageService(f.repo, nil, &log)
	}
	return f
}

func TestMessageService_PostMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("posts for an existing account", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, false)

		candidate := model.Message{PostedBy: 1, MessageText: "hi", TimePostedEpoch: 1000}
		f.repo.EXPECT().CountAccountByID(ctx, 1).Return(1, nil)
		f.repo.EXPECT().Insert(ctx, candidate).
			Return(&model.Message{MessageID: 10, PostedBy: 1, MessageText: "hi", TimePostedEpoch: 1000}, nil)

		msg, err := f.svc.PostMessage(ctx, candidate)
		req.NoError(err)
		req.Equal(10, msg.MessageID)
		req.Equal(int64(1000), msg.TimePostedEpoch)
	})

	t.Run("text at the limit is accepted", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, false)

		text := strings.Repeat("é", model.MaxMessageTextLength)
		f.repo.EXPECT().CountAccountByID(ctx, 1).Return(1, nil)
		f.repo.EXPECT().Insert(ctx, gomock.Any()).Return(&model.Message{MessageID: 1, PostedBy: 1, MessageText: text}, nil)

		_, err := f.svc.PostMessage(ctx, model.Message{PostedBy: 1, MessageText: text})
		req.NoError(err)
	})

	t.Run("invalid text never reaches the store", func(t *testing.T) {
		f := newMessageService(t, false)
		f.repo.EXPECT().CountAccountByID(gomock.Any(), gomock.Any()).Times(0)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		for name, text := range map[string]string{
			"empty":    "",
			"blank":    "   ",
			"too long": strings.Repeat("x", model.MaxMessageTextLength+1),
		} {
			t.Run(name, func(t *testing.T) {
				req := require.New(t)
				msg, err := f.svc.PostMessage(ctx, model.Message{PostedBy: 1, MessageText: text})
				req.Nil(msg)

				var ve *errs.ValidationError
				req.ErrorAs(err, &ve)
				req.Equal("message_text", ve.Field)
			})
		}
	})

	t.Run("unknown sender", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, false)

		f.repo.EXPECT().CountAccountByID(ctx, 99).Return(0, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.PostMessage(ctx, model.Message{PostedBy: 99, MessageText: "hi"})
		req.ErrorIs(err, errs.ErrUnknownSender)
	})

	t.Run("storage failure on the sender check", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, false)

		dbErr := errors.New("broken pipe")
		f.repo.EXPECT().CountAccountByID(ctx, 1).Return(0, dbErr)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.PostMessage(ctx, model.Message{PostedBy: 1, MessageText: "hi"})
		req.ErrorIs(err, dbErr)
		req.NotErrorIs(err, errs.ErrUnknownSender)
	})
}

func TestMessageService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("all messages", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, false)

		f.repo.EXPECT().ListAll(ctx).Return([]model.Message{}, nil)

		msgs, err := f.svc.GetAllMessages(ctx)
		req.NoError(err)
		req.NotNil(msgs)
		req.Empty(msgs)
	})

	t.Run("messages from an unknown sender", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, false)

		f.repo.EXPECT().CountAccountByID(gomock.Any(), gomock.Any()).Times(0)
		f.repo.EXPECT().ListBySender(ctx, 42).Return([]model.Message{}, nil)

		msgs, err := f.svc.GetMessagesFromSender(ctx, 42)
		req.NoError(err)
		req.Empty(msgs)
	})

	t.Run("missing message", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, false)

		f.repo.EXPECT().GetByID(ctx, 5).Return(nil, errs.ErrNotFound)

		msg, err := f.svc.GetMessageByID(ctx, 5)
		req.Nil(msg)
		req.ErrorIs(err, errs.ErrNotFound)
	})
}

func TestMessageService_GetMessageByID_Cache(t *testing.T) {
	ctx := context.Background()
	stored := &model.Message{MessageID: 3, PostedBy: 1, MessageText: "cached", TimePostedEpoch: 5}

	t.Run("hit skips the database", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, true)

		f.cache.EXPECT().Get(ctx, 3).Return(stored, true, nil)
		f.repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

		msg, err := f.svc.GetMessageByID(ctx, 3)
		req.NoError(err)
		req.Equal(stored, msg)
	})

	t.Run("miss reads through and fills", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, true)

		gomock.InOrder(
			f.cache.EXPECT().Get(ctx, 3).Return(nil, false, nil),
			f.repo.EXPECT().GetByID(ctx, 3).Return(stored, nil),
			f.cache.EXPECT().Fill(ctx, stored).Return(nil),
		)

		msg, err := f.svc.GetMessageByID(ctx, 3)
		req.NoError(err)
		req.Equal(stored, msg)
	})

	t.Run("cache failure falls back to the database", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, true)

		f.cache.EXPECT().Get(ctx, 3).Return(nil, false, errors.New("redis down"))
		f.repo.EXPECT().GetByID(ctx, 3).Return(stored, nil)
		f.cache.EXPECT().Fill(ctx, stored).Return(errors.New("redis down"))

		msg, err := f.svc.GetMessageByID(ctx, 3)
		req.NoError(err)
		req.Equal(stored, msg)
	})

	t.Run("absent message is not cached", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, true)

		f.cache.EXPECT().Get(ctx, 4).Return(nil, false, nil)
		f.repo.EXPECT().GetByID(ctx, 4).Return(nil, errs.ErrNotFound)
		f.cache.EXPECT().Fill(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.GetMessageByID(ctx, 4)
		req.ErrorIs(err, errs.ErrNotFound)
	})
}

func TestMessageService_UpdateMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidates then updates only the text", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, true)

		updated := &model.Message{MessageID: 1, PostedBy: 2, MessageText: "new", TimePostedEpoch: 100}
		gomock.InOrder(
			f.repo.EXPECT().CountMessageByID(ctx, 1).Return(1, nil),
			f.cache.EXPECT().Invalidate(ctx, 1).Return(nil),
			f.repo.EXPECT().Update(ctx, 1, "new").Return(updated, nil),
		)
		f.cache.EXPECT().Fill(gomock.Any(), gomock.Any()).Times(0)

		msg, err := f.svc.UpdateMessage(ctx, 1, "new")
		req.NoError(err)
		req.Equal(updated, msg)
	})

	t.Run("invalidation failure leaves the row untouched", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, true)

		cacheErr := errors.New("redis down")
		f.repo.EXPECT().CountMessageByID(ctx, 1).Return(1, nil)
		f.cache.EXPECT().Invalidate(ctx, 1).Return(cacheErr)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		msg, err := f.svc.UpdateMessage(ctx, 1, "new")
		req.Nil(msg)
		req.ErrorIs(err, cacheErr)
	})

	t.Run("invalid text is rejected before the existence check", func(t *testing.T) {
		f := newMessageService(t, false)
		f.repo.EXPECT().CountMessageByID(gomock.Any(), gomock.Any()).Times(0)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		for _, text := range []string{"", " ", strings.Repeat("x", 256)} {
			_, err := f.svc.UpdateMessage(ctx, 1, text)
			require.True(t, errs.IsValidationError(err))
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, false)

		f.repo.EXPECT().CountMessageByID(ctx, 9).Return(0, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.UpdateMessage(ctx, 9, "new")
		req.ErrorIs(err, errs.ErrNotFound)
	})

	t.Run("row deleted between check and update", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, true)

		f.repo.EXPECT().CountMessageByID(ctx, 1).Return(1, nil)
		f.cache.EXPECT().Invalidate(ctx, 1).Return(nil)
		f.repo.EXPECT().Update(ctx, 1, "new").Return(nil, errs.ErrNotFound)

		_, err := f.svc.UpdateMessage(ctx, 1, "new")
		req.ErrorIs(err, errs.ErrNotFound)
	})
}

func TestMessageService_DeleteMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidates then returns the deleted message", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, true)

		deleted := &model.Message{MessageID: 1, PostedBy: 2, MessageText: "bye", TimePostedEpoch: 100}
		gomock.InOrder(
			f.repo.EXPECT().CountMessageByID(ctx, 1).Return(1, nil),
			f.cache.EXPECT().Invalidate(ctx, 1).Return(nil),
			f.repo.EXPECT().Delete(ctx, 1).Return(deleted, nil),
		)

		msg, err := f.svc.DeleteMessage(ctx, 1)
		req.NoError(err)
		req.Equal(deleted, msg)
	})

	t.Run("invalidation failure fails the delete without touching the row", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, true)

		cacheErr := errors.New("redis down")
		f.repo.EXPECT().CountMessageByID(ctx, 1).Return(1, nil)
		f.cache.EXPECT().Invalidate(ctx, 1).Return(cacheErr)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		msg, err := f.svc.DeleteMessage(ctx, 1)
		req.Nil(msg)
		req.ErrorIs(err, cacheErr)
	})

	t.Run("missing message has no side effect", func(t *testing.T) {
		req := require.New(t)
		f := newMessageService(t, true)

		f.repo.EXPECT().CountMessageByID(ctx, 8).Return(0, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
		f.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Times(0)

		msg, err := f.svc.DeleteMessage(ctx, 8)
		req.Nil(msg)
		req.ErrorIs(err, errs.ErrNotFound)
	})
}

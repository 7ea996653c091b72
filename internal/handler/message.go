package handler

import (
	"errors"

	"github.com/deppfellow/go-socialmedia/internal/errs"
	"github.com/deppfellow/go-socialmedia/internal/model"
	"github.com/deppfellow/go-socialmedia/internal/server"
	"github.com/deppfellow/go-socialmedia/internal/service"
	"github.com/labstack/echo/v4"
)

type MessageHandler struct {
	Handler
	messages *service.MessageService
}

func NewMessageHandler(s *server.Server, messages *service.MessageService) *MessageHandler {
	return &MessageHandler{
		Handler:  NewHandler(s),
		messages: messages,
	}
}

func (h *MessageHandler) Post(c echo.Context, req *model.PostMessageRequest) (*model.Message, error) {
	message, err := h.messages.PostMessage(c.Request().Context(), req.Message())
	if err != nil {
		return nil, toHTTPError(err)
	}
	return message, nil
}

func (h *MessageHandler) List(c echo.Context, _ *model.ListMessagesRequest) ([]model.Message, error) {
	return h.messages.GetAllMessages(c.Request().Context())
}

func (h *MessageHandler) ListByAccount(c echo.Context, req *model.AccountMessagesRequest) ([]model.Message, error) {
	return h.messages.GetMessagesFromSender(c.Request().Context(), req.AccountID)
}

// Get returns nil, nil for an unknown id so the route answers 200 with an
// empty body.
func (h *MessageHandler) Get(c echo.Context, req *model.MessageIDRequest) (*model.Message, error) {
	message, err := h.messages.GetMessageByID(c.Request().Context(), req.MessageID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	return message, err
}

func (h *MessageHandler) Update(c echo.Context, req *model.UpdateMessageRequest) (*model.Message, error) {
	message, err := h.messages.UpdateMessage(c.Request().Context(), req.MessageID, req.MessageText)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return message, nil
}

// Delete is idempotent from the client's view: deleting an unknown id is a
// 200 with an empty body.
func (h *MessageHandler) Delete(c echo.Context, req *model.MessageIDRequest) (*model.Message, error) {
	message, err := h.messages.DeleteMessage(c.Request().Context(), req.MessageID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	return message, err
}

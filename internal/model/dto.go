package model

import "github.com/deppfellow/go-socialmedia/internal/validation"

// Request payloads bound by the HTTP layer. Tag rules mirror the service
// rules so a bad request reports every failing field at once; the services
// still check them.

type RegisterRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"min=4"`
}

func (r *RegisterRequest) Validate() error {
	return validation.Struct(r)
}

func (r *RegisterRequest) Account() Account {
	return Account{Username: r.Username, Password: r.Password}
}

// LoginRequest is not validated: credentials that cannot exist simply fail to
// match.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	return nil
}

func (r *LoginRequest) Account() Account {
	return Account{Username: r.Username, Password: r.Password}
}

type PostMessageRequest struct {
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text" validate:"notblank,max=255"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

func (r *PostMessageRequest) Validate() error {
	return validation.Struct(r)
}

func (r *PostMessageRequest) Message() Message {
	return Message{PostedBy: r.PostedBy, MessageText: r.MessageText, TimePostedEpoch: r.TimePostedEpoch}
}

// ListMessagesRequest has nothing to bind.
type ListMessagesRequest struct{}

func (r *ListMessagesRequest) Validate() error {
	return nil
}

type AccountMessagesRequest struct {
	AccountID int `param:"account_id" json:"-"`
}

func (r *AccountMessagesRequest) Validate() error {
	return nil
}

// MessageIDRequest addresses one message by path id.
type MessageIDRequest struct {
	MessageID int `param:"message_id" json:"-"`
}

func (r *MessageIDRequest) Validate() error {
	return nil
}

// UpdateMessageRequest takes the id from the path; only message_text is read
// from the body.
type UpdateMessageRequest struct {
	MessageID   int    `param:"message_id" json:"-"`
	MessageText string `json:"message_text" validate:"notblank,max=255"`
}

func (r *UpdateMessageRequest) Validate() error {
	return validation.Struct(r)
}

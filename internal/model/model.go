// Package model holds the two persisted entities and the business rules that
// apply to their fields.
package model

import "strings"

const (
	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 4

	// MaxMessageTextLength is the longest message text, in characters.
	MaxMessageTextLength = 255
)

// Account is a row of the account table. Password is stored and compared as
// plain text.
type Account struct {
	AccountID int    `json:"account_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// Message is a row of the message table.
type Message struct {
	MessageID       int    `json:"message_id"`
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

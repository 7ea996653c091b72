package repository

import (
	"github.com/deppfellow/go-socialmedia/internal/server"
)

// Repositories groups the table repositories so they can be handed to the
// service layer in one value.
type Repositories struct {
	Account *AccountRepository
	Message *MessageRepository
}

// NewRepositories builds every repository on the server's database handle.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Account: NewAccountRepository(s.DB.SQL, s.Logger),
		Message: NewMessageRepository(s.DB.SQL, s.Logger),
	}
}

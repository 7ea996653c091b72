package service

import (
	"github.com/deppfellow/go-socialmedia/internal/lib/cache"
	"github.com/deppfellow/go-socialmedia/internal/repository"
	"github.com/deppfellow/go-socialmedia/internal/server"
)

// Services groups the business services handed to the HTTP layer.
type Services struct {
	Account *AccountService
	Message *MessageService
}

// NewServices wires each service to its repository. The message cache is only
// attached when the server has a Redis client.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	var messageCache MessageCache
	if s.Redis != nil {
		messageCache = cache.NewMessageCache(s.Redis, s.Config.Redis.CacheTTL)
	}

	return &Services{
		Account: NewAccountService(repos.Account, s.Logger),
		Message: NewMessageService(repos.Message, messageCache, s.Logger),
	}
}

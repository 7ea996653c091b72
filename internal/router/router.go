// Package router builds the echo instance: global middleware, the error
// handler, system routes and the account and message routes.
package router

import (
	"net/http"

	"github.com/deppfellow/go-socialmedia/internal/handler"
	"github.com/deppfellow/go-socialmedia/internal/middleware"
	"github.com/deppfellow/go-socialmedia/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id and New Relic transaction must exist
	// before the context logger reads them.
	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerSocialRoutes(router, h)

	return router
}

// registerSocialRoutes mounts the account and message API at the root.
// Every success is a 200; GET and DELETE of a missing message answer 200 with
// an empty body.
func registerSocialRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/register", handler.Handle(h.Account.Register, http.StatusOK))
	r.POST("/login", handler.Handle(h.Account.Login, http.StatusOK))

	r.POST("/messages", handler.Handle(h.Message.Post, http.StatusOK))
	r.GET("/messages", handler.Handle(h.Message.List, http.StatusOK))
	r.GET("/messages/:message_id", handler.HandleOptional(h.Message.Get, http.StatusOK))
	r.PATCH("/messages/:message_id", handler.Handle(h.Message.Update, http.StatusOK))
	r.DELETE("/messages/:message_id", handler.HandleOptional(h.Message.Delete, http.StatusOK))

	r.GET("/accounts/:account_id/messages", handler.Handle(h.Message.ListByAccount, http.StatusOK))
}

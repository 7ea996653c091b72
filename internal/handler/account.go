package handler

import (
	"github.com/deppfellow/go-socialmedia/internal/model"
	"github.com/deppfellow/go-socialmedia/internal/server"
	"github.com/deppfellow/go-socialmedia/internal/service"
	"github.com/labstack/echo/v4"
)

type AccountHandler struct {
	Handler
	accounts *service.AccountService
}

func NewAccountHandler(s *server.Server, accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{
		Handler:  NewHandler(s),
		accounts: accounts,
	}
}

func (h *AccountHandler) Register(c echo.Context, req *model.RegisterRequest) (*model.Account, error) {
	account, err := h.accounts.CreateAccount(c.Request().Context(), req.Account())
	if err != nil {
		return nil, toHTTPError(err)
	}
	return account, nil
}

func (h *AccountHandler) Login(c echo.Context, req *model.LoginRequest) (*model.Account, error) {
	account, err := h.accounts.Login(c.Request().Context(), req.Account())
	if err != nil {
		return nil, toHTTPError(err)
	}
	return account, nil
}

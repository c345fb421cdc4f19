package handler

import (
	"context"
	"net/http"

	"github.com/choice-battle/backend/internal/model"
	"github.com/choice-battle/backend/internal/server"
	"github.com/choice-battle/backend/internal/service"
	"github.com/choice-battle/backend/internal/validation"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) GetAllUsers(c echo.Context) error {
	return HandleList(c, h.users.GetAllUsers)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	return Handle(c, func(ctx context.Context) (model.User, error) {
		return h.users.GetUserByID(ctx, c.Param("id"))
	}, http.StatusOK, NotFound)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	return HandleWithBody(c, validation.ValidateCreateUser, h.users.CreateUser, http.StatusCreated, Backend)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	return HandleWithBody(c, validation.ValidateUpdateUser, func(ctx context.Context, data validation.Record) (model.User, error) {
		return h.users.UpdateUser(ctx, c.Param("id"), data)
	}, http.StatusOK, NotFound)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	return HandleNoContent(c, func(ctx context.Context) error {
		return h.users.DeleteUser(ctx, c.Param("id"))
	}, http.StatusNoContent, NotFound)
}

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

type RoomInviteHandler struct {
	Handler
	invites *service.RoomInviteService
}

func NewRoomInviteHandler(s *server.Server, invites *service.RoomInviteService) *RoomInviteHandler {
	return &RoomInviteHandler{
		Handler: NewHandler(s),
		invites: invites,
	}
}

func (h *RoomInviteHandler) GetInvite(c echo.Context) error {
	return Handle(c, func(ctx context.Context) (model.RoomInvite, error) {
		return h.invites.GetInviteByID(ctx, c.Param("id"))
	}, http.StatusOK, NotFound)
}

func (h *RoomInviteHandler) GetInviteByCode(c echo.Context) error {
	return Handle(c, func(ctx context.Context) (model.RoomInvite, error) {
		return h.invites.GetInviteByCode(ctx, c.Param("code"))
	}, http.StatusOK, NotFound)
}

func (h *RoomInviteHandler) GetInvitesByRoom(c echo.Context) error {
	return HandleList(c, func(ctx context.Context) ([]model.RoomInvite, error) {
		return h.invites.GetInvitesByRoomID(ctx, c.Param("roomId"))
	})
}

func (h *RoomInviteHandler) CreateInvite(c echo.Context) error {
	return HandleWithBody(c, validation.ValidateCreateRoomInvite, h.invites.CreateInvite, http.StatusCreated, Backend)
}

func (h *RoomInviteHandler) UpdateInvite(c echo.Context) error {
	return HandleWithBody(c, validation.ValidateUpdateRoomInvite, func(ctx context.Context, data validation.Record) (model.RoomInvite, error) {
		return h.invites.UpdateInvite(ctx, c.Param("id"), data)
	}, http.StatusOK, NotFound)
}

func (h *RoomInviteHandler) DeleteInvite(c echo.Context) error {
	return HandleNoContent(c, func(ctx context.Context) error {
		return h.invites.DeleteInvite(ctx, c.Param("id"))
	}, http.StatusNoContent, NotFound)
}

// UseInvite counts one use of the invite and returns it.
func (h *RoomInviteHandler) UseInvite(c echo.Context) error {
	return Handle(c, func(ctx context.Context) (model.RoomInvite, error) {
		return h.invites.UseInvite(ctx, c.Param("id"))
	}, http.StatusOK, NotFound)
}

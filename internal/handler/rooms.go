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

type RoomHandler struct {
	Handler
	rooms *service.RoomService
}

func NewRoomHandler(s *server.Server, rooms *service.RoomService) *RoomHandler {
	return &RoomHandler{
		Handler: NewHandler(s),
		rooms:   rooms,
	}
}

func (h *RoomHandler) GetAllRooms(c echo.Context) error {
	return HandleList(c, h.rooms.GetAllRooms)
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	return Handle(c, func(ctx context.Context) (model.Room, error) {
		return h.rooms.GetRoomByID(ctx, c.Param("id"))
	}, http.StatusOK, NotFound)
}

func (h *RoomHandler) GetRoomByCode(c echo.Context) error {
	return Handle(c, func(ctx context.Context) (model.Room, error) {
		return h.rooms.GetRoomByCode(ctx, c.Param("code"))
	}, http.StatusOK, NotFound)
}

func (h *RoomHandler) CreateRoom(c echo.Context) error {
	return HandleWithBody(c, validation.ValidateCreateRoom, h.rooms.CreateRoom, http.StatusCreated, Backend)
}

func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	return HandleWithBody(c, validation.ValidateUpdateRoom, func(ctx context.Context, data validation.Record) (model.Room, error) {
		return h.rooms.UpdateRoom(ctx, c.Param("id"), data)
	}, http.StatusOK, NotFound)
}

func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	return HandleNoContent(c, func(ctx context.Context) error {
		return h.rooms.DeleteRoom(ctx, c.Param("id"))
	}, http.StatusNoContent, NotFound)
}

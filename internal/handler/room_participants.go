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

type RoomParticipantHandler struct {
	Handler
	participants *service.RoomParticipantService
}

func NewRoomParticipantHandler(s *server.Server, participants *service.RoomParticipantService) *RoomParticipantHandler {
	return &RoomParticipantHandler{
		Handler:      NewHandler(s),
		participants: participants,
	}
}

func (h *RoomParticipantHandler) GetParticipant(c echo.Context) error {
	return Handle(c, func(ctx context.Context) (model.RoomParticipant, error) {
		return h.participants.GetParticipantByID(ctx, c.Param("id"))
	}, http.StatusOK, NotFound)
}

func (h *RoomParticipantHandler) GetParticipantsByRoom(c echo.Context) error {
	return HandleList(c, func(ctx context.Context) ([]model.RoomParticipant, error) {
		return h.participants.GetParticipantsByRoomID(ctx, c.Param("roomId"))
	})
}

func (h *RoomParticipantHandler) GetParticipantsByUser(c echo.Context) error {
	return HandleList(c, func(ctx context.Context) ([]model.RoomParticipant, error) {
		return h.participants.GetParticipantsByUserID(ctx, c.Param("userId"))
	})
}

func (h *RoomParticipantHandler) AddParticipant(c echo.Context) error {
	return HandleWithBody(c, validation.ValidateCreateRoomParticipant, h.participants.AddParticipant, http.StatusCreated, Backend)
}

func (h *RoomParticipantHandler) RemoveParticipant(c echo.Context) error {
	return HandleNoContent(c, func(ctx context.Context) error {
		return h.participants.RemoveParticipant(ctx, c.Param("id"))
	}, http.StatusNoContent, NotFound)
}

func (h *RoomParticipantHandler) RemoveParticipantByRoomAndUser(c echo.Context) error {
	return HandleNoContent(c, func(ctx context.Context) error {
		return h.participants.RemoveParticipantByRoomAndUser(ctx, c.Param("roomId"), c.Param("userId"))
	}, http.StatusNoContent, NotFound)
}

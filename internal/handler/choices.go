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

type ChoiceHandler struct {
	Handler
	choices *service.ChoiceService
}

func NewChoiceHandler(s *server.Server, choices *service.ChoiceService) *ChoiceHandler {
	return &ChoiceHandler{
		Handler: NewHandler(s),
		choices: choices,
	}
}

func (h *ChoiceHandler) GetChoice(c echo.Context) error {
	return Handle(c, func(ctx context.Context) (model.Choice, error) {
		return h.choices.GetChoiceByID(ctx, c.Param("id"))
	}, http.StatusOK, NotFound)
}

func (h *ChoiceHandler) GetChoicesByRoom(c echo.Context) error {
	return HandleList(c, func(ctx context.Context) ([]model.Choice, error) {
		return h.choices.GetChoicesByRoomID(ctx, c.Param("roomId"))
	})
}

func (h *ChoiceHandler) CreateChoice(c echo.Context) error {
	return HandleWithBody(c, validation.ValidateCreateChoice, h.choices.CreateChoice, http.StatusCreated, Backend)
}

func (h *ChoiceHandler) UpdateChoice(c echo.Context) error {
	return HandleWithBody(c, validation.ValidateUpdateChoice, func(ctx context.Context, data validation.Record) (model.Choice, error) {
		return h.choices.UpdateChoice(ctx, c.Param("id"), data)
	}, http.StatusOK, NotFound)
}

func (h *ChoiceHandler) DeleteChoice(c echo.Context) error {
	return HandleNoContent(c, func(ctx context.Context) error {
		return h.choices.DeleteChoice(ctx, c.Param("id"))
	}, http.StatusNoContent, NotFound)
}

// VoteForChoice adds one hit to the choice and returns it.
func (h *ChoiceHandler) VoteForChoice(c echo.Context) error {
	return Handle(c, func(ctx context.Context) (model.Choice, error) {
		return h.choices.VoteForChoice(ctx, c.Param("id"))
	}, http.StatusOK, NotFound)
}

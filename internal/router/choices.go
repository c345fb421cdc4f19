package router

import (
	"github.com/choice-battle/backend/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerChoiceRoutes(api *echo.Group, h *handler.Handlers) {
	choices := api.Group("/choices")

	choices.GET("/room/:roomId", h.Choices.GetChoicesByRoom)
	choices.GET("/:id", h.Choices.GetChoice)
	choices.POST("", h.Choices.CreateChoice)
	choices.PUT("/:id", h.Choices.UpdateChoice)
	choices.PATCH("/:id/vote", h.Choices.VoteForChoice)
	choices.DELETE("/:id", h.Choices.DeleteChoice)
}

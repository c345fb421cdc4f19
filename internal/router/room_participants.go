package router

import (
	"github.com/choice-battle/backend/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerRoomParticipantRoutes(api *echo.Group, h *handler.Handlers) {
	participants := api.Group("/room-participants")

	participants.GET("/room/:roomId", h.RoomParticipants.GetParticipantsByRoom)
	participants.GET("/user/:userId", h.RoomParticipants.GetParticipantsByUser)
	participants.GET("/:id", h.RoomParticipants.GetParticipant)
	participants.POST("", h.RoomParticipants.AddParticipant)
	participants.DELETE("/:id", h.RoomParticipants.RemoveParticipant)
	participants.DELETE("/room/:roomId/user/:userId", h.RoomParticipants.RemoveParticipantByRoomAndUser)
}

package router

import (
	"github.com/choice-battle/backend/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerRoomInviteRoutes(api *echo.Group, h *handler.Handlers) {
	invites := api.Group("/room-invites")

	invites.GET("/code/:code", h.RoomInvites.GetInviteByCode)
	invites.GET("/room/:roomId", h.RoomInvites.GetInvitesByRoom)
	invites.GET("/:id", h.RoomInvites.GetInvite)
	invites.POST("", h.RoomInvites.CreateInvite)
	invites.PUT("/:id", h.RoomInvites.UpdateInvite)
	invites.PATCH("/:id/use", h.RoomInvites.UseInvite)
	invites.DELETE("/:id", h.RoomInvites.DeleteInvite)
}

package router

import (
	"github.com/choice-battle/backend/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerRoomRoutes(api *echo.Group, h *handler.Handlers) {
	rooms := api.Group("/rooms")

	rooms.GET("", h.Rooms.GetAllRooms)
	rooms.GET("/code/:code", h.Rooms.GetRoomByCode)
	rooms.GET("/:id", h.Rooms.GetRoom)
	rooms.POST("", h.Rooms.CreateRoom)
	rooms.PUT("/:id", h.Rooms.UpdateRoom)
	rooms.DELETE("/:id", h.Rooms.DeleteRoom)
}

package router

import (
	"github.com/choice-battle/backend/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerUserRoutes(api *echo.Group, h *handler.Handlers) {
	users := api.Group("/users")

	users.GET("", h.Users.GetAllUsers)
	users.GET("/:id", h.Users.GetUser)
	users.POST("", h.Users.CreateUser)
	users.PUT("/:id", h.Users.UpdateUser)
	users.DELETE("/:id", h.Users.DeleteUser)
}

package router

import (
	"github.com/choice-battle/backend/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not part of the
// game API: health and documentation.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/api-docs", h.OpenAPI.ServeOpenAPIUI)
	r.GET("/api-docs.json", h.OpenAPI.ServeOpenAPISpec)
}

// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/choice-battle/backend/internal/handler"
	"github.com/choice-battle/backend/internal/middleware"
	"github.com/choice-battle/backend/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain,
// the system routes and the /api resource routes.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id feeds tracing and the context logger,
	// which the request logger and recover then use.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.ContextTimeout(),
	)

	registerSystemRoutes(router, h)

	// No group middleware: echo would add catch-all routes for it that
	// answer 404 where 405 is expected.
	api := router.Group("/api")

	registerUserRoutes(api, h)
	registerRoomRoutes(api, h)
	registerRoomParticipantRoutes(api, h)
	registerRoomInviteRoutes(api, h)
	registerChoiceRoutes(api, h)

	return router
}

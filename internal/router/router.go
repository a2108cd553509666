// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware stack and defines the API route groups,
// mapping paths to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/accounts-service/internal/handler"
	"github.com/deppfellow/accounts-service/internal/middleware"
	"github.com/deppfellow/accounts-service/internal/server"
)

// New builds the Echo instance with the full middleware chain and all
// routes registered. Middleware order matters: recovery runs first so
// panics anywhere in the chain become 500s, the request id and tracing
// layers run before the context enhancer so the request-scoped logger
// can pick up their values.
func New(s *server.Server, middlewares *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	r.Use(middlewares.Global.Recover())
	r.Use(middleware.RequestID())
	r.Use(middlewares.Tracing.NewRelicMiddleware())
	r.Use(middlewares.ContextEnhancer.EnhanceContext())
	r.Use(middlewares.Tracing.EnhanceTracing())
	r.Use(middlewares.Global.CORS())
	r.Use(middlewares.Global.Secure())
	r.Use(middlewares.Global.RequestLogger())

	registerSystemRoutes(r, h)
	registerAccountRoutes(r, h)

	return r
}

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/accounts-service/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of
// business logic: the service index, health checks, and docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Service metadata at the root, so a bare GET tells callers what
	// this service is and where the resources live.
	r.GET("/", h.Index.Index)

	// Health endpoint (used by Kubernetes/monitors).
	r.GET("/health", h.Health.CheckHealth)

	// Serve all files from ./static at /static/*.
	// Used for openapi.json and openapi.html.
	r.Static("/static", "static")

	// Docs UI endpoint (serves openapi.html).
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}

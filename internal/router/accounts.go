package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/accounts-service/internal/handler"
	"github.com/deppfellow/accounts-service/internal/middleware"
)

// registerAccountRoutes registers the account resource. The JSON
// content-type gate only guards the body-bearing routes, so reads and
// deletes are reachable from any client without headers.
func registerAccountRoutes(r *echo.Echo, h *handler.Handlers) {
	accounts := r.Group("/accounts")

	accounts.POST("", h.Accounts.Create(), middleware.RequireJSON())
	accounts.GET("", h.Accounts.List())
	accounts.GET("/:id", h.Accounts.Get())
	accounts.PUT("/:id", h.Accounts.Update(), middleware.RequireJSON())
	accounts.DELETE("/:id", h.Accounts.Delete())
}

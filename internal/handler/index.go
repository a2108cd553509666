package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/accounts-service/internal/server"
)

// IndexHandler serves GET /, the service's front door.
type IndexHandler struct {
	Handler
}

// NewIndexHandler constructs an IndexHandler.
func NewIndexHandler(s *server.Server) *IndexHandler {
	return &IndexHandler{Handler: NewHandler(s)}
}

// Index returns service metadata so a client hitting the root can
// discover the resource paths.
func (h *IndexHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"name":    "Account REST API Service",
		"version": "1.0",
		"paths": map[string]string{
			"accounts": "/accounts",
			"health":   "/health",
			"docs":     "/docs",
		},
	})
}

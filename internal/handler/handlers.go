// Package handler is the HTTP layer. It parses requests, runs input
// validation through the validation package, and calls the service
// layer. Nothing below this package knows about echo.
package handler

import (
	"github.com/deppfellow/accounts-service/internal/server"
	"github.com/deppfellow/accounts-service/internal/service"
)

// Handlers groups all HTTP handlers so the router receives a single
// object instead of one argument per resource.
type Handlers struct {
	Accounts *AccountHandler
	Health   *HealthHandler
	Index    *IndexHandler
	OpenAPI  *OpenAPIHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Accounts: NewAccountHandler(s, services),
		Health:   NewHealthHandler(s),
		Index:    NewIndexHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}

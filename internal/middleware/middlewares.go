// Package middleware holds the HTTP middleware stack: cross-cutting
// concerns (CORS, request logging, panic recovery, secure headers, the
// global error handler), request correlation, tracing, and the
// content-type gate that body-bearing routes run before any handler.
package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/accounts-service/internal/server"
)

// Middlewares groups the middleware components so router setup passes a
// single object around.
type Middlewares struct {
	// Global holds middleware applied to every route, plus the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches a request-scoped logger (request id,
	// method, path, ip, trace ids) to each request.
	ContextEnhancer *ContextEnhancer

	// Tracing installs New Relic transactions and enriches them with
	// custom attributes. No-ops when the agent is disabled.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs the middleware components from the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}

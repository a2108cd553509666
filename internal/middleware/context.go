package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/deppfellow/accounts-service/internal/logger"
	"github.com/deppfellow/accounts-service/internal/server"
)

// loggerKey stores the request-scoped logger in both the echo context
// and the request's context.Context.
type loggerCtxKey struct{}

const loggerKey = "logger"

// ContextEnhancer builds a request-scoped logger carrying correlation
// fields (request id, method, route, ip, and trace ids when a New Relic
// transaction exists) and stores it for handlers and lower layers.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer from the app container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the middleware. It must run after RequestID and
// the tracing middleware so their fields are available.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(loggerKey, &contextLogger)

			// Also stash it in the request context so code that only
			// sees a context.Context (repositories, services) can log
			// with correlation fields.
			ctx := context.WithValue(c.Request().Context(), loggerCtxKey{}, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from the echo context.
// Returns a no-op logger when the enhancer has not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(loggerKey).(*zerolog.Logger); ok {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}

// LoggerFromContext retrieves the request-scoped logger from a plain
// context.Context. Returns a no-op logger when absent.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*zerolog.Logger); ok {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/accounts-service/internal/middleware"
	"github.com/deppfellow/accounts-service/internal/server"
)

// HealthHandler serves the /health endpoint used by load balancers and
// uptime monitors.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

// CheckHealth reports service health.
//
// The response contract is {"status":"OK"} with 200 when the service can
// take traffic, and 503 with per-dependency details when it cannot.
// The database check is authoritative; redis only feeds background jobs,
// so a redis outage is logged but does not fail the check.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	timeout := h.server.Config.Observability.HealthChecks.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	checks := map[string]interface{}{}
	healthy := true

	if h.server.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		defer cancel()

		dbStart := time.Now()
		if err := h.server.DB.Pool.Ping(ctx); err != nil {
			healthy = false
			checks["database"] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": time.Since(dbStart).String(),
				"error":         err.Error(),
			}
			logger.Error().Err(err).Msg("database health check failed")
		} else {
			checks["database"] = map[string]interface{}{
				"status":        "healthy",
				"response_time": time.Since(dbStart).String(),
			}
		}
	}

	if h.server.Redis != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		defer cancel()

		redisStart := time.Now()
		if err := h.server.Redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": time.Since(redisStart).String(),
				"error":         err.Error(),
			}
			logger.Error().Err(err).Msg("redis health check failed")
		} else {
			checks["redis"] = map[string]interface{}{
				"status":        "healthy",
				"response_time": time.Since(redisStart).String(),
			}
		}
	}

	if !healthy {
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unavailable",
			"checks": checks,
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
}

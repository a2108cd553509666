package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/accounts-service/internal/errs"
)

// RequireJSON rejects body-bearing requests whose Content-Type header is
// not exactly application/json, before the body is read and strictly
// before any persistence access. Missing and mismatched headers both
// yield 415.
//
// Applied per-route to POST and PUT; GET and DELETE carry no body and
// skip the check.
func RequireJSON() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contentType := c.Request().Header.Get(echo.HeaderContentType)
			if contentType != echo.MIMEApplicationJSON {
				return errs.NewUnsupportedMediaTypeError(
					"Content-Type must be " + echo.MIMEApplicationJSON,
				)
			}
			return next(c)
		}
	}
}

// Package validation binds and validates request payloads.
//
// Rules live as validator struct tags on the payload types; this package
// runs them and converts failures into the field-level 400 responses the
// API contract promises. Content-type negotiation happens earlier, in
// the middleware chain, so by the time a payload reaches BindAndValidate
// the body is known to claim application/json.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/accounts-service/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves, typically by running validator.Struct over their
// own tags.
type Validatable interface {
	Validate() error
}

// CustomValidationError reports a validation issue that struct tags
// cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors satisfies error so Validate implementations can
// return hand-built field errors.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate populates payload from the request and validates it.
//
// Binding covers path parameters and, for body-bearing verbs, the JSON
// body. A malformed body or a failed validation both surface as 400s
// with field errors where available.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, fieldErrors)
	}

	return nil
}

// bindErrorMessage extracts a client-safe message from an echo bind
// failure without leaking decoder internals.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Request body could not be parsed"
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

// extractValidationError flattens validator (or custom) errors into the
// FieldError slice the error response carries.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		customErrors, ok := err.(CustomValidationErrors)
		if !ok {
			return err.Error(), []errs.FieldError{{Field: "", Error: err.Error()}}
		}
		for _, ce := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: ce.Field,
				Error: ce.Message,
			})
		}
	}

	for _, ve := range validationErrors {
		field := toSnakeCase(ve.Field())
		var msg string

		switch ve.Tag() {
		case "required":
			msg = "is required"
		case "email":
			msg = "must be a valid email address"
		case "min":
			if ve.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", ve.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", ve.Param())
			}
		case "max":
			if ve.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", ve.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", ve.Param())
			}
		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", ve.Param())
		default:
			if ve.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, ve.Tag(), ve.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, ve.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}

// toSnakeCase converts a Go field name into its JSON form:
// PhoneNumber -> phone_number.
func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

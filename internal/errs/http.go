package errs

import (
	"net/http"
)

func newError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 response, optionally carrying
// field-level validation errors.
func NewBadRequestError(message string, fieldErrors []FieldError) *HTTPError {
	err := newError(http.StatusBadRequest, message)
	err.Errors = fieldErrors
	return err
}

// NewNotFoundError creates a 404 response.
func NewNotFoundError(message string) *HTTPError {
	return newError(http.StatusNotFound, message)
}

// NewUnsupportedMediaTypeError creates a 415 response, used when a
// body-bearing request does not declare Content-Type: application/json.
func NewUnsupportedMediaTypeError(message string) *HTTPError {
	return newError(http.StatusUnsupportedMediaType, message)
}

// NewInternalServerError creates an opaque 500 response. The real cause
// belongs in the logs, never in the body.
func NewInternalServerError() *HTTPError {
	return newError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// ValidationError wraps a validation failure into a 400 response.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), nil)
}

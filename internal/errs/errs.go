// Package errs defines the error types the API returns to clients.
//
// Handlers and services return *HTTPError values; the global error
// handler serializes them as-is. Anything else that reaches the top of
// the stack is treated as an internal error and reported opaquely.
package errs

import "strings"

// FieldError describes a single invalid request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error shape every API failure serializes to.
//
//   - Code: machine-readable code derived from the status text
//     (e.g. "NOT_FOUND") or from the database error mapping.
//   - Message: human-readable description.
//   - Status: HTTP status code.
//   - Errors: per-field validation errors, when applicable.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError, so
// errors.As/errors.Is work across wrapped chains.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of the error with Message replaced,
// leaving the original template untouched.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores turns an HTTP status text into a stable
// machine code: "Unsupported Media Type" -> "UNSUPPORTED_MEDIA_TYPE".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

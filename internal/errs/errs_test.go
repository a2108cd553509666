package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", MakeUpperCaseWithUnderscores("Unsupported Media Type"))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("OK"))
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *HTTPError
		status int
		code   string
	}{
		{NewBadRequestError("bad", nil), http.StatusBadRequest, "BAD_REQUEST"},
		{NewNotFoundError("missing"), http.StatusNotFound, "NOT_FOUND"},
		{NewUnsupportedMediaTypeError("nope"), http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE"},
		{NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status)
		assert.Equal(t, tc.code, tc.err.Code)
	}
}

func TestBadRequestCarriesFieldErrors(t *testing.T) {
	fieldErrors := []FieldError{{Field: "email", Error: "is required"}}
	err := NewBadRequestError("Validation failed", fieldErrors)
	assert.Equal(t, fieldErrors, err.Errors)
}

func TestInternalServerErrorIsOpaque(t *testing.T) {
	err := NewInternalServerError()
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Message)
	assert.Empty(t, err.Errors)
}

func TestWithMessageCopies(t *testing.T) {
	original := NewNotFoundError("template")
	modified := original.WithMessage("Account with id [5] could not be found")

	assert.Equal(t, "template", original.Message)
	assert.Equal(t, "Account with id [5] could not be found", modified.Message)
	assert.Equal(t, original.Code, modified.Code)
	assert.Equal(t, original.Status, modified.Status)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := errors.Wrap(NewNotFoundError("missing"), "fetching account")

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

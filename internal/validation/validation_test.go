package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/accounts-service/internal/errs"
	"github.com/deppfellow/accounts-service/internal/model"
)

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func badRequest(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidate(t *testing.T) {
	c := newJSONContext(t, `{
		"name": "John Doe",
		"email": "john@doe.com",
		"address": "123 Main Street",
		"phone_number": "555-1212"
	}`)

	payload := &model.AccountPayload{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "John Doe", payload.Name)
	assert.Nil(t, payload.DateJoined)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	payload := &model.AccountPayload{}
	badRequest(t, BindAndValidate(newJSONContext(t, `{"name": `), payload))
}

func TestBindAndValidateBadDate(t *testing.T) {
	payload := &model.AccountPayload{}
	err := BindAndValidate(newJSONContext(t, `{
		"name": "John Doe",
		"email": "john@doe.com",
		"address": "123 Main Street",
		"phone_number": "555-1212",
		"date_joined": "not-a-date"
	}`), payload)
	badRequest(t, err)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	payload := &model.AccountPayload{}
	err := BindAndValidate(newJSONContext(t, `{"email": "not-an-email"}`), payload)

	httpErr := badRequest(t, err)
	require.NotEmpty(t, httpErr.Errors)

	byField := map[string]string{}
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}

	assert.Equal(t, "is required", byField["name"])
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "is required", byField["address"])
	assert.Equal(t, "is required", byField["phone_number"])
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "phone_number", toSnakeCase("PhoneNumber"))
	assert.Equal(t, "name", toSnakeCase("Name"))
	assert.Equal(t, "date_joined", toSnakeCase("DateJoined"))
}

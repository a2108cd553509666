package sqlerr

import (
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/accounts-service/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorPassesHTTPErrorsThrough(t *testing.T) {
	original := errs.NewNotFoundError("Account with id [5] could not be found")
	assert.Same(t, original, HandleError(original).(*errs.HTTPError))
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		TableName:      "accounts",
		ConstraintName: "accounts_pkey",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", httpErr.Code)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23502",
		TableName:  "accounts",
		ColumnName: "phone_number",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ACCOUNT_REQUIRED", httpErr.Code)
	assert.Equal(t, "The Phone Number is required", httpErr.Message)
}

func TestHandleErrorConnectionFailureIsOpaque(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "08006", Message: "server closed the connection"})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "server closed", "driver details must not leak to clients")
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "boom")
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, ConnectionFailure, MapCode("08006"))
	assert.Equal(t, Other, MapCode("42P01"))
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	assert.Equal(t, UniqueViolation, ErrCode(ConvertPgError(pgErr)))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
}

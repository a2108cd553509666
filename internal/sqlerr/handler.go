package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/accounts-service/internal/errs"
)

// HandleError converts a low-level database error into an API error.
//
//   - *errs.HTTPError values pass through untouched.
//   - Constraint violations become 400s with a machine code derived from
//     the table ("ACCOUNT_ALREADY_EXISTS", "ACCOUNT_REQUIRED", ...).
//   - pgx.ErrNoRows / sql.ErrNoRows become 404s.
//   - Everything else (connectivity included) becomes an opaque 500.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		dbErr := ConvertPgError(pgErr)

		switch dbErr.Code {
		case UniqueViolation, ForeignKeyViolation, NotNullViolation, CheckViolation:
			bad := errs.NewBadRequestError(userFriendlyMessage(dbErr), nil)
			bad.Code = generateErrorCode(dbErr.TableName, dbErr.Code)
			return bad
		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("The requested record was not found")
	}

	return errs.NewInternalServerError()
}

// generateErrorCode builds a stable machine code of the form
// <DOMAIN>_<ACTION>, e.g. accounts + UniqueViolation -> ACCOUNT_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := singularize(strings.ToUpper(tableName))

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// userFriendlyMessage phrases a constraint violation for clients,
// using table and column metadata where the driver provides it.
func userFriendlyMessage(dbErr *Error) string {
	entity := entityName(dbErr.TableName, dbErr.ColumnName)

	switch dbErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entity)
	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", entity)
	case NotNullViolation:
		field := humanizeText(dbErr.ColumnName)
		if field == "" {
			field = "field"
		}
		return fmt.Sprintf("The %s is required", field)
	case CheckViolation:
		if field := humanizeText(dbErr.ColumnName); field != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", field)
		}
		return "One or more values do not meet required conditions"
	default:
		return "An error occurred while processing your request"
	}
}

// entityName infers a readable entity name, preferring "<x>_id" foreign
// key columns over the table name.
func entityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return humanizeText(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}
	if tableName != "" {
		return humanizeText(strings.ToLower(singularize(tableName)))
	}
	return "record"
}

// singularize strips a trailing S. Naive, but sufficient for this schema.
func singularize(s string) string {
	if len(s) > 1 && strings.HasSuffix(strings.ToUpper(s), "S") {
		return s[:len(s)-1]
	}
	return s
}

// humanizeText converts snake_case identifiers into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// Package sqlerr translates database driver errors into API errors.
//
// Repositories return pgx errors untouched; the global error handler
// funnels anything unrecognized through HandleError, which maps
// constraint violations to 400s, missing rows to 404s and everything
// else to an opaque 500.
package sqlerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code categorizes Postgres SQLSTATE codes the service cares about.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	ConnectionFailure
)

// MapCode converts a Postgres SQLSTATE code into a Code.
// SQLSTATE class 08 covers connection exceptions.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	}
	if len(sqlstate) >= 2 && sqlstate[:2] == "08" {
		return ConnectionFailure
	}
	return Other
}

// Error is a normalized database error carrying the metadata needed to
// build client-facing messages and machine codes.
type Error struct {
	Code           Code
	DatabaseCode   string // original SQLSTATE
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// ConvertPgError normalizes a raw pgconn.PgError.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// ErrCode reports the mapped Code for err, or Other when err is not a
// database error produced by this package.
func ErrCode(err error) Code {
	var dbErr *Error
	if errors.As(err, &dbErr) {
		return dbErr.Code
	}
	return Other
}

// Copyright (c) 2026 Newsdesk. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Classification
//
// Postgres reports constraint failures via SQLSTATE codes on the wire.
// The ones this API depends on:
//
//   - 23502 not_null_violation: a required column was missing → 400
//   - 23503 foreign_key_violation: author/topic/article reference absent → 404
//   - 22P02 invalid_text_representation: non-numeric text for an int column → 400
//
// Everything else is treated as an internal server error and logged, never
// surfaced to the client.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/openpress/newsdesk/internal/platform/apperr"
)

// ErrNotFound is a standard error returned when a queried row doesn't exist.
var ErrNotFound = apperr.NotFound("Resource not found")

// Wrap inspects a database error and wraps it into a meaningful
// [apperr.AppError]. It hides internal database details from the client
// while classifying the error type.
//
// The action label is carried on the cause chain for server-side logs only.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.NotNullViolation:
			return apperr.InvalidInput("Invalid input by user")
		case pgerrcode.ForeignKeyViolation:
			return apperr.ReferenceNotFound()
		case pgerrcode.InvalidTextRepresentation:
			return apperr.InvalidSyntax("Invalid syntax input")
		}
	}

	return apperr.Internal(&actionError{action: action, cause: err})
}

// actionError annotates a database failure with the repository action that
// produced it, so server logs can tell apart e.g. "list_articles" from
// "delete_comment" without exposing either to the client.
type actionError struct {
	action string
	cause  error
}

func (e *actionError) Error() string { return e.action + ": " + e.cause.Error() }

func (e *actionError) Unwrap() error { return e.cause }

// Copyright (c) 2026 Newsdesk. All rights reserved.

/*
Package apperr defines the centralized error handling framework for Newsdesk.

It provides a rich error type that bridges the gap between low-level storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable Code and a client-safe message.
  - Mapping: Explicit mapping from AppError to standard HTTP status codes.

Every error that leaves the data-access or service layer should be wrapped as
an [AppError] to ensure consistent API responses.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the canonical error type for the Newsdesk API.
//
// It carries an HTTP status code, a machine-readable code, and a client-safe
// message.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND").
	Code string `json:"-"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"msg"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// InvalidInput creates a 400 [AppError] for a malformed request body
// (missing required field, wrong value type). Store NOT-NULL and
// check-constraint violations map here.
func InvalidInput(msg string) *AppError {
	return &AppError{
		Code:       "INVALID_INPUT",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidSyntax creates a 400 [AppError] for non-numeric input where a
// number was expected (ids, limit, page).
func InvalidSyntax(msg string) *AppError {
	return &AppError{
		Code:       "INVALID_SYNTAX",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidQueryValue creates a 400 [AppError] for a query parameter outside
// its allow-list. The message echoes the rejected value so clients can see
// exactly what was refused.
func InvalidQueryValue(param, value string) *AppError {
	return &AppError{
		Code:       "INVALID_QUERY_VALUE",
		Message:    fmt.Sprintf("invalid %s query specified: %s", param, value),
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound creates a 404 [AppError] with the given message. The message
// should include the offending identifier where applicable.
func NotFound(msg string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    msg,
		HTTPStatus: http.StatusNotFound,
	}
}

// ReferenceNotFound creates a 404 [AppError] for a foreign-key target that
// does not exist (author, topic, or article reference).
func ReferenceNotFound() *AppError {
	return &AppError{
		Code:       "REFERENCE_NOT_FOUND",
		Message:    "referenced value does not exist",
		HTTPStatus: http.StatusNotFound,
	}
}

// PageOutOfRange creates a 404 [AppError] for a page request beyond the
// available pages, stating the maximum valid page.
func PageOutOfRange(maxPages int) *AppError {
	return &AppError{
		Code:       "PAGE_OUT_OF_RANGE",
		Message:    fmt.Sprintf("Maximum Page(s) = %d", maxPages),
		HTTPStatus: http.StatusNotFound,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "Server Error!",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

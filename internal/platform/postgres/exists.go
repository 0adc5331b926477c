// Copyright (c) 2026 Newsdesk. All rights reserved.

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openpress/newsdesk/internal/platform/apperr"
	"github.com/openpress/newsdesk/internal/platform/dberr"
)

// Querier is the minimal query surface shared by [pgxpool.Pool], [pgx.Conn],
// and [pgx.Tx], so the existence probe can run inside or outside a transaction.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CheckExists probes whether at least one row exists where column = value.
//
// It is the disambiguation step for empty result sets: a filtered or joined
// query that returns zero rows cannot tell "valid filter, no matches" apart
// from "filter value does not exist". Callers invoke this only AFTER
// observing an empty result, never as a pre-check on the success path.
//
// Table and column names cannot be bound as query parameters, so they are
// quoted through [pgx.Identifier.Sanitize]. Every caller passes compile-time
// constants for both; the value itself is always bound.
func CheckExists(ctx context.Context, q Querier, table, column string, value any) error {
	query := fmt.Sprintf(
		`SELECT 1 FROM %s WHERE %s = $1 LIMIT 1`,
		pgx.Identifier{table}.Sanitize(),
		pgx.Identifier{column}.Sanitize(),
	)

	var one int
	err := q.QueryRow(ctx, query, value).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(fmt.Sprintf("user input %v not found", value))
	}
	if err != nil {
		return dberr.Wrap(err, "check_exists")
	}

	return nil
}

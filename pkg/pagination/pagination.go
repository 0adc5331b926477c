// Copyright (c) 2026 Newsdesk. All rights reserved.

// Package pagination provides the page-slicing helper for API list endpoints.
//
// # Overview
//
// List queries fetch the full filtered, ordered result set and are then
// sliced here. Keeping the slice step as a pure function means the reported
// total_count is always the pre-slice length and the maximum-page arithmetic
// is independent of the store.
package pagination

import (
	"strconv"

	"github.com/openpress/newsdesk/internal/platform/apperr"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Limit int
	Page  int
}

// Page is one window of a result set together with the pre-slice total.
type Page[T any] struct {
	// TotalCount is the length of the full result set before slicing.
	// Pagination never shrinks the reported total.
	TotalCount int
	// Items is the window for the requested page.
	Items []T
}

// ParseParams parses the raw limit and page query values, applying defaults
// when a value is absent.
//
// Non-numeric input fails with a 400. Zero and negative values are rejected
// the same way: a limit of 0 would make the maximum-page computation divide
// by zero, so every accepted request stays renderable.
func ParseParams(limitRaw, pageRaw string) (Params, error) {
	params := Params{Limit: DefaultLimit, Page: DefaultPage}

	if limitRaw != "" {
		limit, err := strconv.Atoi(limitRaw)
		if err != nil || limit < 1 {
			return Params{}, apperr.InvalidSyntax("Invalid syntax input")
		}
		params.Limit = limit
	}

	if pageRaw != "" {
		page, err := strconv.Atoi(pageRaw)
		if err != nil || page < 1 {
			return Params{}, apperr.InvalidSyntax("Invalid syntax input")
		}
		params.Page = page
	}

	return params, nil
}

// Paginate slices one page out of the full ordered result set.
//
// startIndex is (page-1)*limit. A startIndex past the end of the set fails
// with a 404 stating the maximum valid page, ceil(len/limit). A startIndex
// exactly at the end is allowed and yields an empty page, so page 1 of an
// empty set is a valid, empty result rather than an error.
func Paginate[T any](items []T, p Params) (Page[T], error) {
	startIndex := (p.Page - 1) * p.Limit
	endIndex := p.Page * p.Limit

	if startIndex > len(items) {
		maxPages := (len(items) + p.Limit - 1) / p.Limit
		return Page[T]{}, apperr.PageOutOfRange(maxPages)
	}

	if endIndex > len(items) {
		endIndex = len(items)
	}

	window := items[startIndex:endIndex]
	if window == nil {
		// Keep JSON rendering as [] rather than null for empty sets.
		window = []T{}
	}

	return Page[T]{
		TotalCount: len(items),
		Items:      window,
	}, nil
}

package articles

import (
	"time"

	"github.com/openpress/newsdesk/internal/platform/apperr"
)

// Article is one row of the articles table joined with its author and
// live comment count.
//
// Body is populated only on single-article fetches; list queries omit it.
// CommentCount is the count aggregation over joined comments, carried as a
// string per the store's aggregation convention, and is absent from
// vote-update responses (which return the bare row).
type Article struct {
	ArticleID    int       `json:"article_id"`
	Author       string    `json:"author"`
	Title        string    `json:"title"`
	Body         string    `json:"body,omitempty"`
	Topic        string    `json:"topic"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount string    `json:"comment_count,omitempty"`
}

// NewArticle is the creation payload. Fields are pointers so that absent
// JSON fields reach the store as NULL and trip its NOT-NULL constraints;
// input-shape validation is deliberately deferred to the storage layer.
type NewArticle struct {
	Author *string `json:"author"`
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	Topic  *string `json:"topic"`
}

// ListParams enumerates every recognized query option for a list fetch.
// All fields are the raw query-string values; Normalize applies defaults
// and allow-list validation.
type ListParams struct {
	SortBy string
	Order  string
	Topic  string
	Limit  string
	Page   string
}

// sortColumns is the allow-list of sortable columns. Sort values are
// interpolated into the ORDER BY clause, so membership here MUST be checked
// before any interpolation happens.
var sortColumns = map[string]struct{}{
	"article_id":    {},
	"author":        {},
	"created_at":    {},
	"title":         {},
	"topic":         {},
	"votes":         {},
	"comment_count": {},
}

// orders is the allow-list of sort directions.
var orders = map[string]struct{}{
	"asc":  {},
	"desc": {},
}

// Normalize applies the documented defaults (created_at, descending) and
// validates both values against their allow-lists. A violation fails with a
// 400 whose message echoes the rejected value.
func (p ListParams) Normalize() (sortBy, order string, err error) {
	sortBy = "created_at"
	if p.SortBy != "" {
		sortBy = p.SortBy
	}

	order = "desc"
	if p.Order != "" {
		order = p.Order
	}

	if _, ok := sortColumns[sortBy]; !ok {
		return "", "", apperr.InvalidQueryValue("sort by", sortBy)
	}
	if _, ok := orders[order]; !ok {
		return "", "", apperr.InvalidQueryValue("order", order)
	}

	return sortBy, order, nil
}

// ListResult is the paginated list envelope: the page window plus the
// pre-pagination row count.
type ListResult struct {
	Articles   []Article `json:"articles"`
	TotalCount int       `json:"total_count"`
}

package comments

import "time"

// Comment is one row of the comments table.
//
// ArticleID is present on create and vote-update responses (which return
// the bare row) and omitted from per-article listings, where it is implied
// by the route.
type Comment struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id,omitempty"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
}

// NewComment is the creation payload. Pointer fields let absent JSON fields
// reach the store as NULL so its NOT-NULL constraints report the missing
// field; a nonexistent author or article surfaces as a foreign-key
// violation.
type NewComment struct {
	Username *string `json:"username"`
	Body     *string `json:"body"`
}

// ListResult is the paginated list envelope: the page window plus the
// pre-pagination comment count for the article.
type ListResult struct {
	Comments   []Comment `json:"comments"`
	TotalCount int       `json:"total_count"`
}

package comments

import "context"

type Repository interface {
	// ListForArticle returns every comment on the article, newest first;
	// pagination is applied by the service.
	ListForArticle(ctx context.Context, articleID int) ([]Comment, error)
	Create(ctx context.Context, articleID int, input NewComment) (Comment, error)
	IncrementVotes(ctx context.Context, commentID, delta int) (Comment, error)
	Delete(ctx context.Context, commentID int) error
}

package articles

import "context"

type Repository interface {
	// List returns the full filtered, ordered result set; pagination is
	// applied by the service. sortBy and order must already be validated.
	List(ctx context.Context, topic, sortBy, order string) ([]Article, error)
	// Get returns a single article including its body text.
	Get(ctx context.Context, articleID int) (Article, error)
	Create(ctx context.Context, input NewArticle) (int, error)
	IncrementVotes(ctx context.Context, articleID, delta int) (Article, error)
	Delete(ctx context.Context, articleID int) error
}

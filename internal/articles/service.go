package articles

import (
	"context"
	"log/slog"

	"github.com/openpress/newsdesk/pkg/pagination"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListArticles validates the query parameters, fetches the filtered and
// ordered set, and slices the requested page.
//
// Allow-list violations are reported before pagination errors, and a
// nonexistent topic (surfaced by the repository) before an out-of-range
// page, so a request that is wrong in several ways gets the earliest error
// in the pipeline.
func (service *Service) ListArticles(ctx context.Context, params ListParams) (ListResult, error) {
	sortBy, order, err := params.Normalize()
	if err != nil {
		return ListResult{}, err
	}

	articles, err := service.repo.List(ctx, params.Topic, sortBy, order)
	if err != nil {
		return ListResult{}, err
	}

	pageParams, err := pagination.ParseParams(params.Limit, params.Page)
	if err != nil {
		return ListResult{}, err
	}

	page, err := pagination.Paginate(articles, pageParams)
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{Articles: page.Items, TotalCount: page.TotalCount}, nil
}

func (service *Service) GetArticle(ctx context.Context, articleID int) (Article, error) {
	return service.repo.Get(ctx, articleID)
}

// CreateArticle inserts the row and re-fetches it through GetArticle so the
// response carries the computed comment_count and the stored defaults
// (votes, created_at).
func (service *Service) CreateArticle(ctx context.Context, input NewArticle) (Article, error) {
	articleID, err := service.repo.Create(ctx, input)
	if err != nil {
		return Article{}, err
	}

	article, err := service.repo.Get(ctx, articleID)
	if err != nil {
		return Article{}, err
	}

	service.logger.Info("article_created",
		slog.Int("article_id", article.ArticleID),
		slog.String("topic", article.Topic),
	)
	return article, nil
}

// IncrementVotes applies a relative delta; negative values decrement.
func (service *Service) IncrementVotes(ctx context.Context, articleID, delta int) (Article, error) {
	article, err := service.repo.IncrementVotes(ctx, articleID, delta)
	if err != nil {
		return Article{}, err
	}

	service.logger.Info("article_votes_updated",
		slog.Int("article_id", articleID),
		slog.Int("delta", delta),
	)
	return article, nil
}

func (service *Service) DeleteArticle(ctx context.Context, articleID int) error {
	if err := service.repo.Delete(ctx, articleID); err != nil {
		return err
	}

	service.logger.Warn("article_deleted", slog.Int("article_id", articleID))
	return nil
}

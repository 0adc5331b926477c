package comments

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

// ListForArticle fetches every comment on the article and slices the
// requested page. An article with no comments yields an empty page, not an
// error; a nonexistent article is surfaced as a 404 by the repository.
func (service *Service) ListForArticle(ctx context.Context, articleID int, limitRaw, pageRaw string) (ListResult, error) {
	comments, err := service.repo.ListForArticle(ctx, articleID)
	if err != nil {
		return ListResult{}, err
	}

	pageParams, err := pagination.ParseParams(limitRaw, pageRaw)
	if err != nil {
		return ListResult{}, err
	}

	page, err := pagination.Paginate(comments, pageParams)
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{Comments: page.Items, TotalCount: page.TotalCount}, nil
}

func (service *Service) CreateComment(ctx context.Context, articleID int, input NewComment) (Comment, error) {
	comment, err := service.repo.Create(ctx, articleID, input)
	if err != nil {
		return Comment{}, err
	}

	service.logger.Info("comment_created",
		slog.Int("comment_id", comment.CommentID),
		slog.Int("article_id", articleID),
	)
	return comment, nil
}

// IncrementVotes applies a relative delta; negative values decrement.
func (service *Service) IncrementVotes(ctx context.Context, commentID, delta int) (Comment, error) {
	comment, err := service.repo.IncrementVotes(ctx, commentID, delta)
	if err != nil {
		return Comment{}, err
	}

	service.logger.Info("comment_votes_updated",
		slog.Int("comment_id", commentID),
		slog.Int("delta", delta),
	)
	return comment, nil
}

func (service *Service) DeleteComment(ctx context.Context, commentID int) error {
	if err := service.repo.Delete(ctx, commentID); err != nil {
		return err
	}

	service.logger.Warn("comment_deleted", slog.Int("comment_id", commentID))
	return nil
}

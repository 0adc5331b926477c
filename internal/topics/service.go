package topics

import (
	"context"
	"log/slog"
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

func (service *Service) ListTopics(ctx context.Context) ([]Topic, error) {
	return service.repo.List(ctx)
}

// CreateTopic inserts the topic and returns the created row verbatim.
// Missing fields surface as NOT-NULL violations from the store.
func (service *Service) CreateTopic(ctx context.Context, input NewTopic) (Topic, error) {
	topic, err := service.repo.Create(ctx, input)
	if err != nil {
		return Topic{}, err
	}

	service.logger.Info("topic_created", slog.String("slug", topic.Slug))
	return topic, nil
}

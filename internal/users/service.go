package users

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

func (service *Service) ListUsers(ctx context.Context) ([]User, error) {
	return service.repo.List(ctx)
}

func (service *Service) GetUser(ctx context.Context, username string) (User, error) {
	return service.repo.Get(ctx, username)
}

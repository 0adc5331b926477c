package topics

import "context"

type Repository interface {
	List(ctx context.Context) ([]Topic, error)
	Create(ctx context.Context, input NewTopic) (Topic, error)
}

package users

import "context"

type Repository interface {
	// List returns every user, username field only.
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, username string) (User, error)
}

package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openpress/newsdesk/internal/platform/dberr"
	"github.com/openpress/newsdesk/internal/platform/postgres"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context) ([]User, error) {
	rows, err := repository.db.Query(ctx, `SELECT username FROM users`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.Username); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}

	return users, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, username string) (User, error) {
	query := `SELECT username, name, avatar_url FROM users WHERE username = $1`

	var user User
	err := repository.db.QueryRow(ctx, query, username).Scan(
		&user.Username, &user.Name, &user.AvatarURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		// Route through the existence probe for the standard 404 message.
		if err := postgres.CheckExists(ctx, repository.db, "users", "username", username); err != nil {
			return User{}, err
		}
		return User{}, dberr.ErrNotFound
	}
	if err != nil {
		return User{}, dberr.Wrap(err, "get_user")
	}

	return user, nil
}

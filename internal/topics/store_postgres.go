package topics

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openpress/newsdesk/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context) ([]Topic, error) {
	rows, err := repository.db.Query(ctx, `SELECT slug, description FROM topics`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_topics")
	}
	defer rows.Close()

	topics := []Topic{}
	for rows.Next() {
		var topic Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_topic")
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_topics")
	}

	return topics, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, input NewTopic) (Topic, error) {
	query := `INSERT INTO topics (slug, description)
		VALUES ($1, $2)
		RETURNING slug, description`

	var topic Topic
	err := repository.db.QueryRow(ctx, query, input.Slug, input.Description).Scan(
		&topic.Slug, &topic.Description,
	)
	if err != nil {
		return Topic{}, dberr.Wrap(err, "create_topic")
	}

	return topic, nil
}

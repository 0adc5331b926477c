package comments

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openpress/newsdesk/internal/platform/apperr"
	"github.com/openpress/newsdesk/internal/platform/dberr"
	"github.com/openpress/newsdesk/internal/platform/postgres"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListForArticle(ctx context.Context, articleID int) ([]Comment, error) {
	query := `SELECT comment_id, comments.votes, comments.created_at, users.username AS author, comments.body
		FROM comments
		JOIN users ON users.username = comments.author
		WHERE article_id = $1
		ORDER BY comments.created_at DESC`

	rows, err := repository.db.Query(ctx, query, articleID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var comment Comment
		if err := rows.Scan(
			&comment.CommentID, &comment.Votes, &comment.CreatedAt,
			&comment.Author, &comment.Body,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}

	// Zero comments is ambiguous: the article may have none (valid, empty
	// 200) or may not exist (404). Probe only after the empty result.
	if len(comments) == 0 {
		if err := postgres.CheckExists(ctx, repository.db, "articles", "article_id", articleID); err != nil {
			return nil, err
		}
	}

	return comments, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, articleID int, input NewComment) (Comment, error) {
	query := `INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, votes, created_at, author, body`

	var comment Comment
	err := repository.db.QueryRow(ctx, query, articleID, input.Username, input.Body).Scan(
		&comment.CommentID, &comment.ArticleID, &comment.Votes,
		&comment.CreatedAt, &comment.Author, &comment.Body,
	)
	if err != nil {
		return Comment{}, dberr.Wrap(err, "create_comment")
	}

	return comment, nil
}

func (repository *PostgresRepository) IncrementVotes(ctx context.Context, commentID, delta int) (Comment, error) {
	query := `UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, article_id, votes, created_at, author, body`

	var comment Comment
	err := repository.db.QueryRow(ctx, query, delta, commentID).Scan(
		&comment.CommentID, &comment.ArticleID, &comment.Votes,
		&comment.CreatedAt, &comment.Author, &comment.Body,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Comment{}, apperr.NotFound("comment_id does not exist")
	}
	if err != nil {
		return Comment{}, dberr.Wrap(err, "update_comment_votes")
	}

	return comment, nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, commentID int) error {
	cmd, err := repository.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("comment_id does not exist")
	}
	return nil
}

package articles

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

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

// selectColumns is the shared projection for list and single-article
// fetches. comment_count is computed live from the joined comments, never
// read from a stored column.
const selectColumns = `articles.article_id, users.username AS author, articles.created_at,
	title, topic, articles.votes, COUNT(comments.comment_id) AS comment_count`

func (repository *PostgresRepository) List(ctx context.Context, topic, sortBy, order string) ([]Article, error) {
	// sortBy and order arrive validated, but they are interpolated into the
	// query string, so membership is re-checked here. The allow-list check
	// must precede any interpolation.
	if _, ok := sortColumns[sortBy]; !ok {
		return nil, apperr.InvalidQueryValue("sort by", sortBy)
	}
	if _, ok := orders[order]; !ok {
		return nil, apperr.InvalidQueryValue("order", order)
	}

	query := `SELECT ` + selectColumns + `
		FROM articles
		LEFT JOIN users ON articles.author = users.username
		LEFT JOIN comments ON comments.article_id = articles.article_id`

	args := []any{}
	if topic != "" {
		query += ` WHERE topic = $1`
		args = append(args, topic)
	}

	query += ` GROUP BY articles.article_id, users.username`
	query += fmt.Sprintf(` ORDER BY %s %s`, sortBy, strings.ToUpper(order))

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var article Article
		var commentCount int64
		if err := rows.Scan(
			&article.ArticleID, &article.Author, &article.CreatedAt,
			&article.Title, &article.Topic, &article.Votes, &commentCount,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_article")
		}
		article.CommentCount = strconv.FormatInt(commentCount, 10)
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_articles")
	}

	// An empty set with a topic filter is ambiguous: the topic may have no
	// articles (valid, empty 200) or not exist at all (404). Probe only now
	// that the empty result has been observed.
	if len(articles) == 0 && topic != "" {
		if err := postgres.CheckExists(ctx, repository.db, "topics", "slug", topic); err != nil {
			return nil, err
		}
	}

	return articles, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, articleID int) (Article, error) {
	query := `SELECT ` + selectColumns + `, articles.body
		FROM articles
		LEFT JOIN users ON articles.author = users.username
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id, users.username`

	var article Article
	var commentCount int64
	err := repository.db.QueryRow(ctx, query, articleID).Scan(
		&article.ArticleID, &article.Author, &article.CreatedAt,
		&article.Title, &article.Topic, &article.Votes, &commentCount,
		&article.Body,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		if err := postgres.CheckExists(ctx, repository.db, "articles", "article_id", articleID); err != nil {
			return Article{}, err
		}
		return Article{}, dberr.ErrNotFound
	}
	if err != nil {
		return Article{}, dberr.Wrap(err, "get_article")
	}

	article.CommentCount = strconv.FormatInt(commentCount, 10)
	return article, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, input NewArticle) (int, error) {
	query := `INSERT INTO articles (author, title, body, topic)
		VALUES ($1, $2, $3, $4)
		RETURNING article_id`

	var articleID int
	err := repository.db.QueryRow(ctx, query,
		input.Author, input.Title, input.Body, input.Topic,
	).Scan(&articleID)
	if err != nil {
		return 0, dberr.Wrap(err, "create_article")
	}

	return articleID, nil
}

func (repository *PostgresRepository) IncrementVotes(ctx context.Context, articleID, delta int) (Article, error) {
	query := `UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, author, created_at, title, topic, votes, body`

	var article Article
	err := repository.db.QueryRow(ctx, query, delta, articleID).Scan(
		&article.ArticleID, &article.Author, &article.CreatedAt,
		&article.Title, &article.Topic, &article.Votes, &article.Body,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Article{}, apperr.NotFound("article_id does not exist")
	}
	if err != nil {
		return Article{}, dberr.Wrap(err, "update_article_votes")
	}

	return article, nil
}

// Delete removes an article and its dependent comments in one transaction.
// Comments go first; they hold a foreign key on the article.
func (repository *PostgresRepository) Delete(ctx context.Context, articleID int) error {
	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "delete_article_begin")
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE article_id = $1`, articleID); err != nil {
		return dberr.Wrap(err, "delete_article_comments")
	}

	cmd, err := tx.Exec(ctx, `DELETE FROM articles WHERE article_id = $1`, articleID)
	if err != nil {
		return dberr.Wrap(err, "delete_article")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("article_id does not exist")
	}

	if err := tx.Commit(ctx); err != nil {
		return dberr.Wrap(err, "delete_article_commit")
	}
	return nil
}

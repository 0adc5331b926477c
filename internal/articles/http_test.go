package articles_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpress/newsdesk/internal/articles"
	"github.com/openpress/newsdesk/internal/comments"
	"github.com/openpress/newsdesk/internal/platform/apperr"
)

// fakeCommentRepository backs the nested /articles/{id}/comments routes.
type fakeCommentRepository struct {
	byArticle map[int][]comments.Comment
	createErr error
	nextID    int
}

func (f *fakeCommentRepository) ListForArticle(_ context.Context, articleID int) ([]comments.Comment, error) {
	list, ok := f.byArticle[articleID]
	if !ok {
		return nil, apperr.NotFound("user input " + strconv.Itoa(articleID) + " not found")
	}
	return list, nil
}

func (f *fakeCommentRepository) Create(_ context.Context, articleID int, input comments.NewComment) (comments.Comment, error) {
	if f.createErr != nil {
		return comments.Comment{}, f.createErr
	}
	f.nextID++
	return comments.Comment{
		CommentID: f.nextID,
		ArticleID: articleID,
		Author:    *input.Username,
		Body:      *input.Body,
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeCommentRepository) IncrementVotes(_ context.Context, commentID, delta int) (comments.Comment, error) {
	return comments.Comment{}, apperr.NotFound("comment_id does not exist")
}

func (f *fakeCommentRepository) Delete(_ context.Context, commentID int) error {
	return apperr.NotFound("comment_id does not exist")
}

func newTestRouter(repo *fakeRepository, commentRepo *fakeCommentRepository) http.Handler {
	logger := testLogger()
	articleHandler := articles.NewHandler(
		articles.NewService(repo, logger),
		comments.NewService(commentRepo, logger),
	)
	return articleHandler.Routes()
}

func doRequest(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()

	decoded := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return decoded
}

func errorMsg(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Msg
}

func TestHTTP_ListArticles(t *testing.T) {
	router := newTestRouter(&fakeRepository{articles: seedArticles(12)}, &fakeCommentRepository{})

	recorder := doRequest(t, router, http.MethodGet, "/?limit=10&p=2", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body articles.ListResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 12, body.TotalCount)
	assert.Len(t, body.Articles, 2)
}

func TestHTTP_ListArticles_InvalidSortBy(t *testing.T) {
	router := newTestRouter(&fakeRepository{}, &fakeCommentRepository{})

	recorder := doRequest(t, router, http.MethodGet, "/?sort_by=bananas", "")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, errorMsg(t, recorder), "bananas")
}

func TestHTTP_ListArticles_PageBeyondRange(t *testing.T) {
	router := newTestRouter(&fakeRepository{articles: seedArticles(12)}, &fakeCommentRepository{})

	recorder := doRequest(t, router, http.MethodGet, "/?limit=10&p=4", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Maximum Page(s) = 2", errorMsg(t, recorder))
}

func TestHTTP_GetArticle(t *testing.T) {
	repo := &fakeRepository{articles: seedArticles(3)}
	repo.articles[0].Body = "full body text"
	router := newTestRouter(repo, &fakeCommentRepository{})

	recorder := doRequest(t, router, http.MethodGet, "/1", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	var article articles.Article
	require.NoError(t, json.Unmarshal(body["article"], &article))
	assert.Equal(t, 1, article.ArticleID)
	assert.Equal(t, "full body text", article.Body)
}

func TestHTTP_GetArticle_NotFound(t *testing.T) {
	router := newTestRouter(&fakeRepository{}, &fakeCommentRepository{})

	recorder := doRequest(t, router, http.MethodGet, "/999", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "user input 999 not found", errorMsg(t, recorder))
}

func TestHTTP_GetArticle_NonNumericID(t *testing.T) {
	router := newTestRouter(&fakeRepository{}, &fakeCommentRepository{})

	recorder := doRequest(t, router, http.MethodGet, "/not-a-number", "")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid input of article_id", errorMsg(t, recorder))
}

func TestHTTP_PatchVotes(t *testing.T) {
	repo := &fakeRepository{articles: []articles.Article{{ArticleID: 1, Votes: 100}}}
	router := newTestRouter(repo, &fakeCommentRepository{})

	recorder := doRequest(t, router, http.MethodPatch, "/1", `{"inc_votes": 1}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	body := decodeBody(t, recorder)
	var article articles.Article
	require.NoError(t, json.Unmarshal(body["article"], &article))
	assert.Equal(t, 101, article.Votes)

	recorder = doRequest(t, router, http.MethodPatch, "/1", `{"inc_votes": -10}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	require.NoError(t, json.Unmarshal(decodeBody(t, recorder)["article"], &article))
	assert.Equal(t, 91, article.Votes)
}

func TestHTTP_PatchVotes_MalformedBody(t *testing.T) {
	router := newTestRouter(&fakeRepository{articles: seedArticles(1)}, &fakeCommentRepository{})

	tests := []struct {
		name string
		body string
	}{
		{"non_numeric_delta", `{"inc_votes": "banana"}`},
		{"missing_field", `{}`},
		{"not_json", `inc_votes=1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, router, http.MethodPatch, "/1", tt.body)
			require.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, "Invalid input by user", errorMsg(t, recorder))
		})
	}
}

func TestHTTP_DeleteArticle(t *testing.T) {
	repo := &fakeRepository{articles: seedArticles(1)}
	router := newTestRouter(repo, &fakeCommentRepository{})

	recorder := doRequest(t, router, http.MethodDelete, "/1", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())

	recorder = doRequest(t, router, http.MethodDelete, "/1", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "article_id does not exist", errorMsg(t, recorder))
}

func TestHTTP_ListComments(t *testing.T) {
	commentRepo := &fakeCommentRepository{byArticle: map[int][]comments.Comment{
		1: {
			{CommentID: 2, Author: "butter_bridge", Body: "newer", Votes: 14},
			{CommentID: 1, Author: "butter_bridge", Body: "older", Votes: 16},
		},
	}}
	router := newTestRouter(&fakeRepository{articles: seedArticles(1)}, commentRepo)

	recorder := doRequest(t, router, http.MethodGet, "/1/comments", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body comments.ListResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 2, body.TotalCount)
	assert.Len(t, body.Comments, 2)
}

func TestHTTP_ListComments_ArticleWithoutComments(t *testing.T) {
	commentRepo := &fakeCommentRepository{byArticle: map[int][]comments.Comment{1: {}}}
	router := newTestRouter(&fakeRepository{articles: seedArticles(1)}, commentRepo)

	recorder := doRequest(t, router, http.MethodGet, "/1/comments", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body comments.ListResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 0, body.TotalCount)
	assert.NotNil(t, body.Comments)
}

func TestHTTP_ListComments_MissingArticle(t *testing.T) {
	router := newTestRouter(&fakeRepository{}, &fakeCommentRepository{})

	recorder := doRequest(t, router, http.MethodGet, "/999/comments", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "user input 999 not found", errorMsg(t, recorder))
}

func TestHTTP_CreateComment(t *testing.T) {
	router := newTestRouter(&fakeRepository{articles: seedArticles(1)}, &fakeCommentRepository{})

	recorder := doRequest(t, router, http.MethodPost, "/1/comments", `{"username":"butter_bridge","body":"Great read."}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	body := decodeBody(t, recorder)
	var comment comments.Comment
	require.NoError(t, json.Unmarshal(body["comment"], &comment))
	assert.Equal(t, "butter_bridge", comment.Author)
	assert.Equal(t, "Great read.", comment.Body)
	assert.Equal(t, 1, comment.ArticleID)
}

func TestHTTP_CreateComment_UnknownAuthor(t *testing.T) {
	commentRepo := &fakeCommentRepository{createErr: apperr.ReferenceNotFound()}
	router := newTestRouter(&fakeRepository{articles: seedArticles(1)}, commentRepo)

	recorder := doRequest(t, router, http.MethodPost, "/1/comments", `{"username":"ghost","body":"boo"}`)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "referenced value does not exist", errorMsg(t, recorder))
}

func TestHTTP_CreateArticle(t *testing.T) {
	repo := &fakeRepository{}
	router := newTestRouter(repo, &fakeCommentRepository{})

	recorder := doRequest(t, router, http.MethodPost, "/", `{"author":"butter_bridge","title":"t","body":"b","topic":"mitch"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	body := decodeBody(t, recorder)
	var article articles.Article
	require.NoError(t, json.Unmarshal(body["article"], &article))
	assert.Equal(t, "0", article.CommentCount)
	assert.Equal(t, "b", article.Body)
}

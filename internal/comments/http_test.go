package comments_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpress/newsdesk/internal/comments"
)

func newTestRouter(repo *fakeRepository) http.Handler {
	service := comments.NewService(repo, testLogger())
	return comments.NewHandler(service).Routes()
}

func doRequest(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func errorMsg(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Msg
}

func TestHTTP_UpdateVotes(t *testing.T) {
	repo := &fakeRepository{byID: map[int]comments.Comment{1: {CommentID: 1, Votes: 16}}}
	router := newTestRouter(repo)

	recorder := doRequest(t, router, http.MethodPatch, "/1", `{"inc_votes": 5}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Comment comments.Comment `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, 21, envelope.Comment.Votes)
}

func TestHTTP_UpdateVotes_MalformedBody(t *testing.T) {
	repo := &fakeRepository{byID: map[int]comments.Comment{1: {CommentID: 1, Votes: 16}}}
	router := newTestRouter(repo)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing inc_votes", body: `{}`},
		{name: "wrong type", body: `{"inc_votes": "five"}`},
		{name: "not json", body: `inc_votes=5`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := doRequest(t, router, http.MethodPatch, "/1", tc.body)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, "Invalid input by user", errorMsg(t, recorder))
		})
	}
}

func TestHTTP_UpdateVotes_NonNumericID(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	recorder := doRequest(t, router, http.MethodPatch, "/banana", `{"inc_votes": 1}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid input of comment_id", errorMsg(t, recorder))
}

func TestHTTP_UpdateVotes_MissingComment(t *testing.T) {
	router := newTestRouter(&fakeRepository{byID: map[int]comments.Comment{}})

	recorder := doRequest(t, router, http.MethodPatch, "/999", `{"inc_votes": 1}`)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "comment_id does not exist", errorMsg(t, recorder))
}

func TestHTTP_DeleteComment(t *testing.T) {
	repo := &fakeRepository{byID: map[int]comments.Comment{1: {CommentID: 1}}}
	router := newTestRouter(repo)

	recorder := doRequest(t, router, http.MethodDelete, "/1", "")
	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.Bytes())

	recorder = doRequest(t, router, http.MethodDelete, "/1", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "comment_id does not exist", errorMsg(t, recorder))
}

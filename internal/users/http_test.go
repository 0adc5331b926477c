package users_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpress/newsdesk/internal/platform/apperr"
	"github.com/openpress/newsdesk/internal/users"
)

type fakeRepository struct {
	users map[string]users.User
}

func (f *fakeRepository) List(_ context.Context) ([]users.User, error) {
	listed := make([]users.User, 0, len(f.users))
	for username := range f.users {
		listed = append(listed, users.User{Username: username})
	}
	return listed, nil
}

func (f *fakeRepository) Get(_ context.Context, username string) (users.User, error) {
	user, ok := f.users[username]
	if !ok {
		return users.User{}, apperr.NotFound("user input " + username + " not found")
	}
	return user, nil
}

func newTestRouter(repo *fakeRepository) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := users.NewService(repo, logger)
	return users.NewHandler(service).Routes()
}

func doRequest(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, target, nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestHTTP_ListUsers_UsernamesOnly(t *testing.T) {
	repo := &fakeRepository{users: map[string]users.User{
		"butter_bridge": {Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/jonny.jpg"},
		"icellusedkars": {Username: "icellusedkars", Name: "sam"},
	}}
	router := newTestRouter(repo)

	recorder := doRequest(t, router, "/")
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Users []map[string]string `json:"users"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Users, 2)
	for _, user := range envelope.Users {
		assert.Contains(t, user, "username")
		assert.NotContains(t, user, "name")
		assert.NotContains(t, user, "avatar_url")
	}
}

func TestHTTP_GetUser(t *testing.T) {
	repo := &fakeRepository{users: map[string]users.User{
		"butter_bridge": {Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/jonny.jpg"},
	}}
	router := newTestRouter(repo)

	recorder := doRequest(t, router, "/butter_bridge")
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		User users.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "butter_bridge", envelope.User.Username)
	assert.Equal(t, "jonny", envelope.User.Name)
}

func TestHTTP_GetUser_Unknown(t *testing.T) {
	router := newTestRouter(&fakeRepository{users: map[string]users.User{}})

	recorder := doRequest(t, router, "/ghost")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	var envelope struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "user input ghost not found", envelope.Msg)
}

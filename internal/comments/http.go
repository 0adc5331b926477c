package comments

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/openpress/newsdesk/internal/platform/apperr"
	"github.com/openpress/newsdesk/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves the /api/comments subtree. The per-article comment routes
// live under /api/articles and are registered by the articles handler.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Patch("/{comment_id}", handler.updateVotes)
	router.Delete("/{comment_id}", handler.deleteComment)

	return router
}

type commentEnvelope struct {
	Comment Comment `json:"comment"`
}

type voteUpdate struct {
	IncVotes *int `json:"inc_votes"`
}

func (handler *Handler) updateVotes(writer http.ResponseWriter, request *http.Request) {
	commentID, err := parseCommentID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input voteUpdate
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil || input.IncVotes == nil {
		respond.Error(writer, request, apperr.InvalidInput("Invalid input by user"))
		return
	}

	comment, err := handler.service.IncrementVotes(request.Context(), commentID, *input.IncVotes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, commentEnvelope{Comment: comment})
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	commentID, err := parseCommentID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteComment(request.Context(), commentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func parseCommentID(request *http.Request) (int, error) {
	commentID, err := strconv.Atoi(chi.URLParam(request, "comment_id"))
	if err != nil {
		return 0, apperr.InvalidSyntax("Invalid input of comment_id")
	}
	return commentID, nil
}

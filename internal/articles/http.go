package articles

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/openpress/newsdesk/internal/comments"
	"github.com/openpress/newsdesk/internal/platform/apperr"
	"github.com/openpress/newsdesk/internal/platform/respond"
)

// Handler serves the /api/articles subtree, including the nested
// per-article comment routes.
type Handler struct {
	service  *Service
	comments *comments.Service
}

func NewHandler(service *Service, commentService *comments.Service) *Handler {
	return &Handler{service: service, comments: commentService}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listArticles)
	router.Post("/", handler.createArticle)

	router.Get("/{article_id}", handler.getArticle)
	router.Patch("/{article_id}", handler.updateVotes)
	router.Delete("/{article_id}", handler.deleteArticle)

	router.Get("/{article_id}/comments", handler.listComments)
	router.Post("/{article_id}/comments", handler.createComment)

	return router
}

type articleEnvelope struct {
	Article Article `json:"article"`
}

type commentEnvelope struct {
	Comment comments.Comment `json:"comment"`
}

type voteUpdate struct {
	IncVotes *int `json:"inc_votes"`
}

func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()
	params := ListParams{
		SortBy: query.Get("sort_by"),
		Order:  query.Get("order"),
		Topic:  query.Get("topic"),
		Limit:  query.Get("limit"),
		Page:   query.Get("p"),
	}

	result, err := handler.service.ListArticles(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := parseArticleID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.GetArticle(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, articleEnvelope{Article: article})
}

func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input NewArticle
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, apperr.InvalidInput("Invalid input by user"))
		return
	}

	article, err := handler.service.CreateArticle(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, articleEnvelope{Article: article})
}

func (handler *Handler) updateVotes(writer http.ResponseWriter, request *http.Request) {
	articleID, err := parseArticleID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input voteUpdate
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil || input.IncVotes == nil {
		respond.Error(writer, request, apperr.InvalidInput("Invalid input by user"))
		return
	}

	article, err := handler.service.IncrementVotes(request.Context(), articleID, *input.IncVotes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, articleEnvelope{Article: article})
}

func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := parseArticleID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteArticle(request.Context(), articleID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	articleID, err := parseArticleID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	query := request.URL.Query()
	result, err := handler.comments.ListForArticle(request.Context(), articleID, query.Get("limit"), query.Get("p"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	articleID, err := parseArticleID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input comments.NewComment
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, apperr.InvalidInput("Invalid input by user"))
		return
	}

	comment, err := handler.comments.CreateComment(request.Context(), articleID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, commentEnvelope{Comment: comment})
}

func parseArticleID(request *http.Request) (int, error) {
	articleID, err := strconv.Atoi(chi.URLParam(request, "article_id"))
	if err != nil {
		return 0, apperr.InvalidSyntax("Invalid input of article_id")
	}
	return articleID, nil
}

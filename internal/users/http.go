package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openpress/newsdesk/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listUsers)
	router.Get("/{username}", handler.getUser)

	return router
}

type usersEnvelope struct {
	Users []User `json:"users"`
}

type userEnvelope struct {
	User User `json:"user"`
}

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, usersEnvelope{Users: users})
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.service.GetUser(request.Context(), chi.URLParam(request, "username"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, userEnvelope{User: user})
}

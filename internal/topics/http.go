package topics

import (
	"encoding/json"
	"net/http"

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

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listTopics)
	router.Post("/", handler.createTopic)

	return router
}

type topicsEnvelope struct {
	Topics []Topic `json:"topics"`
}

type topicEnvelope struct {
	Topic Topic `json:"topic"`
}

func (handler *Handler) listTopics(writer http.ResponseWriter, request *http.Request) {
	topics, err := handler.service.ListTopics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, topicsEnvelope{Topics: topics})
}

func (handler *Handler) createTopic(writer http.ResponseWriter, request *http.Request) {
	var input NewTopic
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, apperr.InvalidInput("Invalid input by user"))
		return
	}

	topic, err := handler.service.CreateTopic(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, topicEnvelope{Topic: topic})
}

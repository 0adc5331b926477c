// Copyright (c) 2026 Newsdesk. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/openpress/newsdesk/internal/articles"
	"github.com/openpress/newsdesk/internal/comments"
	"github.com/openpress/newsdesk/internal/platform/config"
	"github.com/openpress/newsdesk/internal/platform/constants"
	"github.com/openpress/newsdesk/internal/platform/middleware"
	"github.com/openpress/newsdesk/internal/platform/respond"
	"github.com/openpress/newsdesk/internal/topics"
	"github.com/openpress/newsdesk/internal/users"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Topics serves the topic catalogue.
	Topics *topics.Handler

	// Users serves the read-only user directory.
	Users *users.Handler

	// Articles serves articles and their nested comment routes.
	Articles *articles.Handler

	// Comments serves comment mutations keyed by comment id.
	Comments *comments.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Metrics())
	r.Use(chimw.CleanPath)

	// Any unmatched path, and any known path hit with the wrong method,
	// gets the same fixed 404 body.
	r.NotFound(pathDoesNotExist)
	r.MethodNotAllowed(pathDoesNotExist)

	// # Infrastructure Endpoints
	// Unauthenticated probes for container orchestration and scraping.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", middleware.MetricsHandler())

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Get("/", endpointsDoc)
		api.Mount("/topics", h.Topics.Routes())
		api.Mount("/users", h.Users.Routes())
		api.Mount("/articles", h.Articles.Routes())
		api.Mount("/comments", h.Comments.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Router exposes the composed handler for in-process testing.
func (s *Server) Router() http.Handler {
	return s.router
}

// pathDoesNotExist is the catch-all response for unrouted requests.
func pathDoesNotExist(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusNotFound, respond.ErrorEnvelope{Msg: "Path does not exist"})
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}

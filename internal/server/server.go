package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/liftlog/internal/workout"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	templates *workout.TemplateStore
	sessions  *workout.Manager
	archive   *workout.Archive
	log       *slog.Logger
	apiKey    string
	router    chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey
// disables auth on mutating routes (local single-user mode).
func New(templates *workout.TemplateStore, sessions *workout.Manager, archive *workout.Archive, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		templates: templates,
		sessions:  sessions,
		archive:   archive,
		log:       log,
		apiKey:    apiKey,
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Read endpoints (no auth — tsnet handles access)
		r.Get("/templates", s.handleListTemplates)
		r.Get("/templates/{id}", s.handleGetTemplate)
		r.Get("/sessions", s.handleListSessions)
		r.Get("/sessions/range", s.handleSessionsByRange)
		r.Get("/sessions/current", s.handleCurrentSession)
		r.Get("/analytics/stats", s.handleAnalyticsStats)
		r.Get("/analytics/volume", s.handleAnalyticsVolume)

		// Mutating endpoints (API key required when configured)
		r.Group(func(r chi.Router) {
			if s.apiKey != "" {
				r.Use(APIKeyAuth(s.apiKey))
			}
			r.Post("/templates", s.handleCreateTemplate)
			r.Put("/templates/{id}", s.handleUpdateTemplate)
			r.Delete("/templates/{id}", s.handleDeleteTemplate)
			r.Post("/sessions/start", s.handleStartSession)
			r.Post("/sessions/current/sets", s.handleLogSet)
			r.Post("/sessions/current/finish", s.handleFinishSession)
			r.Delete("/sessions/current", s.handleDiscardSession)
		})
	})
}

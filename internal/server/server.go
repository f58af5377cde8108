package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/claude/liftcycle/internal/program"
	"github.com/claude/liftcycle/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store   storage.CycleStore
	catalog *program.Catalog
	log     *slog.Logger
	apiKey  string
	now     func() time.Time
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(store storage.CycleStore, catalog *program.Catalog, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:   store,
		catalog: catalog,
		log:     log,
		apiKey:  apiKey,
		now:     time.Now,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(middleware.Recoverer)
	s.router.Use(CORS)

	s.router.Get("/api/v1/templates", s.handleListTemplates)
	s.router.Post("/api/v1/templates/{templateID}/preview", s.handlePreviewTemplate)

	s.router.Get("/api/v1/cycles", s.handleListCycles)
	s.router.Get("/api/v1/cycles/{cycleID}", s.handleGetCycle)
	s.router.Get("/api/v1/progress/one-rep-max", s.handleOneRepMax)

	// Mutations (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/cycles", s.handleCreateCycle)
		r.Delete("/api/v1/cycles/{cycleID}", s.handleDeleteCycle)

		r.Route("/api/v1/cycles/{cycleID}/days/{day}", func(r chi.Router) {
			r.Post("/complete", s.handleCompleteDay)
			r.Delete("/exercises/{exercise}", s.handleRemoveExercise)
			r.Post("/exercises/{exercise}/sets", s.handleAddSet)
			r.Delete("/exercises/{exercise}/sets/{set}", s.handleRemoveSet)
			r.Post("/exercises/{exercise}/sets/{set}/toggle", s.handleToggleSet)
			r.Post("/exercises/{exercise}/sets/{set}/status", s.handleSetStatus)
			r.Post("/exercises/{exercise}/sets/{set}/amrap", s.handleRecordAmrap)
		})
	})
}

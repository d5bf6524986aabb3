// Package server implements the Workdeck HTTP API and serves the web UI.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/me/workdeck/internal/config"
	"github.com/me/workdeck/internal/gallery"
	"github.com/me/workdeck/internal/ui"
	"github.com/me/workdeck/internal/workspace"
)

// Server is the Workdeck API server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.Config
	startTime time.Time
	gallery   *gallery.Source
	files     *workspace.Dir
	ui        *ui.UI // optional; nil serves the JSON API only
}

// New creates a new Server with all routes registered.
// u may be nil when only the JSON API is wanted (e.g. in tests).
func New(cfg config.Config, gal *gallery.Source, files *workspace.Dir, u *ui.UI, logger *slog.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		startTime: time.Now(),
		gallery:   gal,
		files:     files,
		ui:        u,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(s.logRequests)

	r.Get("/health", s.handleHealth)

	// Workflow API. All endpoints are POST with JSON bodies; the list
	// endpoints take the empty object {}. The shapes are fixed, existing
	// clients depend on them.
	r.Post("/fetch-gallery", s.handleFetchGallery)
	r.Post("/list-workflows", s.handleListWorkflows)
	r.Post("/delete-workflow", s.handleDeleteWorkflow)
	r.Post("/save-workflow", s.handleSaveWorkflow)
	r.Post("/load-workflow", s.handleLoadWorkflow)

	// Web UI (HTML)
	if s.ui != nil {
		s.ui.RegisterRoutes(r)
	}
}

// Package api serves chartopt over HTTP.
//
// Clients post a TOML chart definition (with an optional inline dataset);
// the server finalizes it through the shared pipeline runner, stores the
// resulting option document and returns its ID. Stored charts can be read
// back as JSON or viewed as an HTML page.
//
// # Routes
//
//	GET    /healthz                   liveness
//	POST   /api/render                finalize and render without storing
//	POST   /api/charts                finalize and store
//	GET    /api/charts                list stored charts, newest first
//	GET    /api/charts/{id}           stored record with its option document
//	GET    /api/charts/{id}/option    option document only
//	DELETE /api/charts/{id}           delete a stored chart
//	GET    /charts/{id}               HTML page
//	GET    /metrics                   Prometheus metrics (mounted by serve)
//
// Chart violations are reported with status 422 and the full violation list.
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/chartopt/pkg/buildinfo"
	"github.com/matzehuels/chartopt/pkg/pipeline"
	"github.com/matzehuels/chartopt/pkg/storage"
)

// DefaultMaxBodyBytes limits request bodies.
const DefaultMaxBodyBytes = 4 << 20

// Server is the HTTP API server for chartopt.
type Server struct {
	router       chi.Router
	runner       *pipeline.Runner
	store        storage.Store
	log          *log.Logger
	maxBodyBytes int64
}

// NewServer creates and configures the HTTP server.
func NewServer(runner *pipeline.Runner, store storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:       runner,
		store:        store,
		log:          logger,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handle mounts an extra handler, such as a metrics endpoint, behind the
// server's middleware.
func (s *Server) Handle(pattern string, h http.Handler) {
	s.router.Handle(pattern, h)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/render", s.handleRender)

		r.Post("/charts", s.handleCreateChart)
		r.Get("/charts", s.handleListCharts)
		r.Get("/charts/{id}", s.handleGetChart)
		r.Get("/charts/{id}/option", s.handleGetOption)
		r.Delete("/charts/{id}", s.handleDeleteChart)
	})

	r.Get("/charts/{id}", s.handleChartPage)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

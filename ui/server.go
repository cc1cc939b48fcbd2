// Package ui serves the dashboard payload over HTTP. The static dashboard
// renderer itself is external; this server only exposes the JSON it binds.
package ui

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pladria/app"
	"pladria/internal"
)

// Server exposes the report generation pipeline to the dashboard.
type Server struct {
	router     *chi.Mux
	service    *app.ReportService
	dispatcher *app.Dispatcher
	port       string
	log        *internal.Logger
}

// Config holds server configuration.
type Config struct {
	Port string
}

// NewServer creates the HTTP server around a report service.
func NewServer(cfg Config, service *app.ReportService) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		service:    service,
		dispatcher: app.NewDispatcher(app.NewTaskRunner()),
		port:       cfg.Port,
		log:        internal.NewDefaultLogger("Server"),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/api/report", s.handleReport)
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	s.log.Info("listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

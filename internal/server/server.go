// Package server exposes the tracker over a local HTTP API so a browser
// frontend can drive it.
package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nmehta/leetrack/internal/catalog"
	"github.com/nmehta/leetrack/internal/storage"
)

// Server wires the catalog client and annotation store into HTTP handlers.
type Server struct {
	client  *catalog.Client
	store   *storage.Store
	origins []string
	version string
}

// New creates a Server. origins is the CORS allowlist for the frontend.
func New(client *catalog.Client, store *storage.Store, origins []string, version string) *Server {
	return &Server{client: client, store: store, origins: origins, version: version}
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/api/companies", s.handleCompanies)
	r.Get("/api/questions/{company}/{duration}", s.handleQuestions)
	r.Get("/api/search/{id}", s.handleSearch)
	r.Get("/api/activity", s.handleActivity)
	r.Get("/api/review", s.handleReview)
	r.Get("/api/status", s.handleStatus)
	r.Post("/api/attempt", s.handleAttempt)
	r.Post("/api/entries", s.handleCreateEntry)

	return r
}

// ListenAndServe starts the server on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("leetrack API listening on http://%s", addr)
	return http.ListenAndServe(addr, s.Router())
}

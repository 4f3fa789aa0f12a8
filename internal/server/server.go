// Package server provides the HTTP API for parsing, scoring, exporting and searching
// candidates.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hyperjump/resumecua/internal/config"
	"github.com/hyperjump/resumecua/internal/keyword"
	"github.com/hyperjump/resumecua/internal/pipeline"
	"github.com/hyperjump/resumecua/internal/storage"
	"github.com/hyperjump/resumecua/pkg/utils"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 120 * time.Second

// WatchService exposes the inbox watcher to the API.
type WatchService interface {
	Roots() []string
}

// Server is the HTTP server for the resume API.
type Server struct {
	pipeline *pipeline.Pipeline
	storage  storage.Storage        // optional; candidate endpoints answer 501 without it
	index    keyword.CandidateIndex // optional
	watch    WatchService           // optional
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithStorage enables storing parsed uploads and the candidate endpoints.
func WithStorage(s storage.Storage, idx keyword.CandidateIndex) Option {
	return func(srv *Server) {
		srv.storage = s
		srv.index = idx
	}
}

// WithWatch exposes the watched inbox directories.
func WithWatch(w WatchService) Option {
	return func(srv *Server) { srv.watch = w }
}

// NewServer creates a server with the given dependencies. A nil logger discards logs.
func NewServer(p *pipeline.Pipeline, cfg *config.Config, logger *zap.Logger, opts ...Option) *Server {
	s := &Server{pipeline: p, config: cfg, logger: utils.NopIfNil(logger)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	timeout := defaultRequestTimeout
	if d, err := time.ParseDuration(s.config.Server.RequestTimeout); err == nil && d > 0 {
		timeout = d
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Post("/parse", s.handleParse)
		r.Post("/score", s.handleScore)
		r.Post("/export/csv", s.handleExportCSV)
		r.Post("/export/xlsx", s.handleExportXLSX)
		r.Get("/candidates", s.handleListCandidates)
		r.Get("/candidates/search", s.handleSearchCandidates)
		r.Get("/candidates/{id}", s.handleGetCandidate)
		r.Delete("/candidates/{id}", s.handleDeleteCandidate)
		r.Get("/watch/directories", s.handleWatchDirectories)
	})
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

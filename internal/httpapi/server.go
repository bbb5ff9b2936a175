// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httpapi serves the content repository over a read-only JSON
// API. It owns the translation from repository error kinds to HTTP
// status codes; the repository itself never sees HTTP.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/MoayyadShahid/MVPXiv/internal/repository"
	"github.com/MoayyadShahid/MVPXiv/pkg/types"
)

// Server wraps the HTTP server for the content API.
type Server struct {
	srv *http.Server
	log *zap.Logger
}

// NewServer builds the API server around the given repository.
func NewServer(cfg types.ServerConfig, repo repository.Repository, log *zap.Logger) *Server {
	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	return &Server{
		srv: &http.Server{
			Addr:         cfg.Addr,
			Handler:      NewRouter(repo, log),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		log: log,
	}
}

// Run starts serving and blocks until the server stops.
func (s *Server) Run() error {
	s.log.Info("serving content API", zap.String("addr", s.srv.Addr))
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// NewRouter builds the route table. Split out from NewServer so tests
// can drive the handlers through httptest without a listener.
func NewRouter(repo repository.Repository, log *zap.Logger) http.Handler {
	api := &handlers{repo: repo, log: log}

	r := chi.NewRouter()
	r.Use(requestLogger(log))
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", api.health)
		r.Get("/batches", api.listBatches)
		r.Get("/batches/latest", api.latestBatch)
		r.Get("/batches/{date}", api.batchByDate)
		r.Get("/ideas/{id}", api.ideaByID)
	})
	return r
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, req)
			log.Info("request",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("took", time.Since(start)),
			)
		})
	}
}

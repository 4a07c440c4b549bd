// Package api serves one opened RIFX/XFIR file over HTTP for remote
// inspection: file properties, the chunk tree, raw payloads, and decoded
// sound headers. Every request walks the shared immutable buffer afresh,
// which is safe and cheap.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/hikari-no-yume/dream-sparer/pkg/riff"
)

// Server holds the inspection server state.
type Server struct {
	file    *riff.File
	path    string
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a server for an already-parsed file.
func NewServer(file *riff.File, path string, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		file:    file,
		path:    path,
		config:  config,
		metrics: metrics,
	}
}

// Router builds the HTTP routes. Split out from Start so tests can drive it
// with httptest.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", s.metrics.InstrumentHandler("GET", "/health", s.handleHealth))

	r.Route("/api/v1", func(r chi.Router) {
		if s.config.APIKey != "" {
			r.Use(apiKeyMiddleware(s.config.APIKey))
		}

		r.Get("/movie", s.metrics.InstrumentHandler("GET", "/api/v1/movie", s.handleMovie))
		r.Get("/chunks", s.metrics.InstrumentHandler("GET", "/api/v1/chunks", s.handleChunks))
		r.Get("/chunks/{index}", s.metrics.InstrumentHandler("GET", "/api/v1/chunks/{index}", s.handleChunk))
		r.Get("/chunks/{index}/payload", s.metrics.InstrumentHandler("GET", "/api/v1/chunks/{index}/payload", s.handlePayload))
		r.Get("/chunks/{index}/sound-header", s.metrics.InstrumentHandler("GET", "/api/v1/chunks/{index}/sound-header", s.handleSoundHeader))
	})

	return r
}

// Start runs the server until it fails.
func Start(file *riff.File, path string, config ServerConfig) error {
	server := NewServer(file, path, config, NewMetrics())
	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)

	log.Info().
		Str("addr", addr).
		Str("file", path).
		Bool("auth", config.APIKey != "").
		Msg("inspection server listening")

	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Package server provides the HTTP REST API wrapping the analysis engine.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/daniela/contamination-checker/internal/config"
	"github.com/daniela/contamination-checker/internal/parsing"
	"github.com/daniela/contamination-checker/internal/server/middleware"
	"github.com/daniela/contamination-checker/internal/types"
)

// Config holds server configuration.
type Config struct {
	Port    int
	DataDir string
}

// Server represents the HTTP server. The curated reference variants and
// default weights are loaded once at startup and shared read-only across
// requests; each request gets its own copy of everything mutable.
type Server struct {
	httpServer *http.Server
	log        zerolog.Logger
	validate   *validator.Validate

	references     map[string]*types.CuratedReference
	defaultWeights *types.WeightConfig
	dataDir        string
}

// New creates a new server instance, loading both curated variants and the
// default weight configuration from the data directory.
func New(cfg Config) (*Server, error) {
	s := &Server{
		log:        zerolog.New(os.Stdout).With().Timestamp().Str("component", "server").Logger(),
		validate:   validator.New(),
		references: make(map[string]*types.CuratedReference),
		dataDir:    cfg.DataDir,
	}

	for _, variant := range []string{config.VariantID35, config.VariantID75} {
		fileCfg := config.Config{DataDir: cfg.DataDir, Variant: variant}
		ref, err := parsing.LoadCuratedReference(fileCfg.CuratedPath())
		if err != nil {
			return nil, fmt.Errorf("failed to load curated variant %s: %w", variant, err)
		}
		s.references[variant] = ref
	}

	fileCfg := config.Config{DataDir: cfg.DataDir}
	weights, err := config.LoadWeights(fileCfg.DefaultWeightsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load default weights: %w", err)
	}
	s.defaultWeights = weights

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /weights", s.handleWeights)
	mux.HandleFunc("GET /reference/{variant}", s.handleReference)

	handler := middleware.RequestID(middleware.Logging(s.log, middleware.Recover(s.log, mux)))

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	return s, nil
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	s.log.Info().Msg("server stopped")
	return nil
}

// Handler exposes the configured handler chain, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Package server serves hydrated portfolio pages over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/portfolio-hydrator/internal/fetch"
	"github.com/jonathan/portfolio-hydrator/internal/loader"
	"github.com/jonathan/portfolio-hydrator/internal/rendering"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	fs         afero.Fs
	pagePath   string
	primary    loader.Source
	renderer   *rendering.Renderer
	logger     *slog.Logger
}

// Config holds server configuration
type Config struct {
	Port int
	// PagePath is the HTML page hydrated on every request to /.
	PagePath string
	// Base is the directory or http(s) URL holding data.json.
	Base         string
	FetchTimeout time.Duration
	// Fs defaults to the OS filesystem.
	Fs       afero.Fs
	Renderer *rendering.Renderer
	Logger   *slog.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.PagePath == "" {
		return nil, fmt.Errorf("page path is required")
	}
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Renderer == nil {
		cfg.Renderer = rendering.NewRenderer()
	}

	opts := fetch.DefaultOptions()
	if cfg.FetchTimeout > 0 {
		opts.Timeout = cfg.FetchTimeout
	}
	primary, err := loader.NewPrimarySource(cfg.Base, cfg.Fs, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data source: %w", err)
	}

	s := &Server{
		fs:       cfg.Fs,
		pagePath: cfg.PagePath,
		primary:  primary,
		renderer: cfg.Renderer,
		logger:   cfg.Logger,
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /"+filepath.Base(cfg.PagePath), s.handlePage)
	mux.HandleFunc("GET /"+loader.DataFileName, s.handleData)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Everything else is a static asset next to the page
	assets := assetFS{fs: afero.NewHttpFs(cfg.Fs).Dir(filepath.Dir(cfg.PagePath))}
	mux.Handle("GET /", http.FileServer(assets))

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.withRequestID(s.withLogging(s.withSecurityHeaders(mux))),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

// Handler returns the root handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", "addr", ln.Addr().String(), "page", s.pagePath, "data", s.primary.String())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		s.logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

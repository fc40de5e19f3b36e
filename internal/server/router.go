// Package server sets up the fetcharr server.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fetcharr/internal/contracts"
	"fetcharr/internal/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config holds the immutable settings the server is constructed with.
type Config struct {
	Port      string
	ToolPath  string
	StaticDir string
}

// Server handles API requests by relaying to the extraction tool.
type Server struct {
	cfg     Config
	invoker contracts.Invoker
}

// NewRouter returns an http.Handler serving the API and the static frontend.
func NewRouter(cfg Config, invoker contracts.Invoker) http.Handler {
	s := &Server{cfg: cfg, invoker: invoker}

	// Initialize router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- API Routes ---
	r.Route("/api", func(r chi.Router) {
		r.Post("/info", s.handleInfo)
		r.Get("/download", s.handleDownload)
	})

	// --- Static Frontend ---
	// Serve compiled web UI for non-API routes.
	r.Handle("/*", StaticHandler(cfg.StaticDir))

	return r
}

// StartServer runs the HTTP server on the configured port until ctx is cancelled.
func StartServer(ctx context.Context, cfg Config, invoker contracts.Invoker) error {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: NewRouter(cfg, invoker),
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()
	logging.S("fetcharr web server running on http://localhost:%s", cfg.Port)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// StaticHandler serves the web UI build directory.
func StaticHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.StripPrefix("/", fs)
}

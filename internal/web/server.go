// Package web serves the ACME reports over HTTP.
//
// The dataset is loaded once at startup; every report request recomputes
// its report from that dataset.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/acme-reports/internal/config"
	"github.com/JonMunkholm/acme-reports/internal/core"
	"github.com/JonMunkholm/acme-reports/internal/metrics"
	mw "github.com/JonMunkholm/acme-reports/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP server for the report service.
type Server struct {
	dataset *core.Dataset
	cfg     *config.Config
	metrics *metrics.Registry
	router  *chi.Mux
	server  *http.Server
}

// NewServer creates a new Server instance serving reports over ds.
func NewServer(ds *core.Dataset, cfg *config.Config, m *metrics.Registry) *Server {
	s := &Server{
		dataset: ds,
		cfg:     cfg,
		metrics: m,
		router:  chi.NewRouter(),
	}
	m.ObserveDataset(ds.Counts())
	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(securityHeaders)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Handle("/metrics", s.metrics.Handler())

	s.router.Route("/api", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(s.cfg.Security))
		r.Get("/reports", s.handleListReports)
		r.Get("/reports/{reportKey}", s.handleReport)
	})
}

// Start begins listening for HTTP requests. It returns nil after Shutdown.
func (s *Server) Start() error {
	slog.Info("server starting", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

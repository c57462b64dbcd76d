// Package web serves the dashboard: one HTML page, a JSON view-model
// endpoint, and PNG chart endpoints. Every request recomputes the view
// from the read-only store; there is no per-session state.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Kim-dr/paper-explorer/pkg/db"
)

type Server struct {
	mux        *http.ServeMux
	httpServer *http.Server
	store      *db.DB
	logger     *slog.Logger
}

// NewServer wires the routes and middleware around the statistics store.
func NewServer(addr string, store *db.DB, logger *slog.Logger) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		store:  store,
		logger: logger,
	}

	s.mux.HandleFunc("/", s.handleDashboard)
	s.mux.HandleFunc("/api/dashboard", s.handleAPI)
	s.mux.HandleFunc("/charts/years.png", s.handleYearChart)
	s.mux.HandleFunc("/charts/words.png", s.handleWordChart)
	s.mux.HandleFunc("/healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.withMiddleware(s.mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the middleware-wrapped mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until the context is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	}
}

// withMiddleware applies request logging and panic recovery.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return s.loggingMiddleware(s.recoveryMiddleware(next))
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic in handler", "path", r.URL.Path, "panic", rec)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

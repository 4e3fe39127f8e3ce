// Package server exposes the coach over HTTP: a JSON API for advice
// and lesson management, plus a WebSocket stream for live table play.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/lox/pokercoach/internal/lessons"
	"github.com/lox/pokercoach/internal/store"
)

// Learner is the subset of the learning pipeline the server needs.
type Learner interface {
	Learn(ctx context.Context, videoURL string) ([]lessons.Lesson, error)
}

// Server serves the coach API.
type Server struct {
	addr     string
	store    store.LessonStore
	learner  Learner
	upgrader websocket.Upgrader
	logger   *log.Logger
	httpSrv  *http.Server
}

// New creates a server. learner may be nil, in which case lesson
// ingestion from videos is disabled.
func New(addr string, lessonStore store.LessonStore, learner Learner, logger *log.Logger) *Server {
	s := &Server{
		addr:    addr,
		store:   lessonStore,
		learner: learner,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// For development, allow all origins
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("server"),
	}
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Routes builds the HTTP router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/advise", s.handleAdvise)
		r.Route("/lessons", func(r chi.Router) {
			r.Get("/", s.handleListLessons)
			r.Post("/", s.handleLearn)
			r.Patch("/{id}", s.handlePatchLesson)
			r.Delete("/{id}", s.handleDeleteLesson)
		})
	})
	r.Get("/ws/advise", s.handleAdviseStream)

	return r
}

// Start runs the server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", "addr", s.addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("Shutting down HTTP server")
	return s.httpSrv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

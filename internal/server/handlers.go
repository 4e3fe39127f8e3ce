package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lox/pokercoach/internal/game"
	"github.com/lox/pokercoach/internal/lessons"
	"github.com/lox/pokercoach/internal/store"
	"github.com/lox/pokercoach/internal/strategy"
)

// adjustments loads the adjustments of every stored lesson. Inactive
// lessons are carried through; the engine ignores them when applying.
func (s *Server) adjustments(ctx context.Context) ([]strategy.Adjustment, error) {
	stored, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]strategy.Adjustment, 0, len(stored))
	for _, l := range stored {
		out = append(out, l.Adjustment)
	}
	return out, nil
}

func (s *Server) handleAdvise(w http.ResponseWriter, r *http.Request) {
	var state game.State
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid game state: "+err.Error())
		return
	}

	adjustments, err := s.adjustments(r.Context())
	if err != nil {
		s.logger.Error("Failed to load lessons", "error", err)
		s.writeError(w, http.StatusInternalServerError, "loading lessons")
		return
	}

	s.writeJSON(w, http.StatusOK, strategy.Advise(state, adjustments))
}

func (s *Server) handleListLessons(w http.ResponseWriter, r *http.Request) {
	stored, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("Failed to list lessons", "error", err)
		s.writeError(w, http.StatusInternalServerError, "listing lessons")
		return
	}
	if stored == nil {
		stored = []lessons.Lesson{}
	}
	s.writeJSON(w, http.StatusOK, stored)
}

func (s *Server) handleLearn(w http.ResponseWriter, r *http.Request) {
	if s.learner == nil {
		s.writeError(w, http.StatusServiceUnavailable, "lesson ingestion is not configured")
		return
	}

	var req struct {
		VideoURL string `json:"videoUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.VideoURL) == "" {
		s.writeError(w, http.StatusBadRequest, "videoUrl is required")
		return
	}

	learned, err := s.learner.Learn(r.Context(), req.VideoURL)
	if err != nil {
		s.logger.Error("Failed to learn from video", "video_url", req.VideoURL, "error", err)
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	if len(learned) == 0 {
		s.writeJSON(w, http.StatusOK, []lessons.Lesson{})
		return
	}

	if err := s.store.Put(r.Context(), learned...); err != nil {
		s.logger.Error("Failed to store lessons", "error", err)
		s.writeError(w, http.StatusInternalServerError, "storing lessons")
		return
	}

	s.writeJSON(w, http.StatusCreated, learned)
}

func (s *Server) handlePatchLesson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		IsActive *bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		s.writeError(w, http.StatusBadRequest, "isActive is required")
		return
	}

	err := s.store.SetActive(r.Context(), id, *req.IsActive)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "lesson not found")
		return
	}
	if err != nil {
		s.logger.Error("Failed to update lesson", "id", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, "updating lesson")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"id": id, "isActive": *req.IsActive})
}

func (s *Server) handleDeleteLesson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "lesson not found")
		return
	}
	if err != nil {
		s.logger.Error("Failed to delete lesson", "id", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, "deleting lesson")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

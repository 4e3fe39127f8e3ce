package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/lox/pokercoach/internal/game"
	"github.com/lox/pokercoach/internal/strategy"
)

// adviseRequest is one frame from a client on the advise stream.
type adviseRequest struct {
	State game.State `json:"state"`
}

// adviseResponse is the server's reply frame.
type adviseResponse struct {
	Advice *strategy.Advice `json:"advice,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// handleAdviseStream upgrades to a WebSocket and answers each game
// state frame with advice. Lessons are re-read per frame so toggling a
// lesson takes effect mid-session.
func (s *Server) handleAdviseStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	s.logger.Info("Advise stream connected", "remote", conn.RemoteAddr())

	for {
		var req adviseRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("Advise stream read failed", "error", err)
			}
			return
		}

		adjustments, err := s.adjustments(r.Context())
		if err != nil {
			s.logger.Error("Failed to load lessons", "error", err)
			if err := conn.WriteJSON(adviseResponse{Error: "loading lessons"}); err != nil {
				return
			}
			continue
		}

		advice := strategy.Advise(req.State, adjustments)
		if err := conn.WriteJSON(adviseResponse{Advice: &advice}); err != nil {
			s.logger.Warn("Advise stream write failed", "error", err)
			return
		}
	}
}

package agent

import (
	"encoding/json"
	"errors"
	"net/http"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type FindMoveRequest struct {
	Board  game.Board `json:"board"`
	Player game.Color `json:"player"`
}

type FindMoveResponse struct {
	Move   game.Move            `json:"move"`
	Found  bool                 `json:"found"`
	Metric metrics.SearchMetric `json:"metric"`
}

// NewRouter exposes agent over HTTP: POST /findmove answers with the agent's move,
// GET /ping is a liveness check.
func NewRouter(agent Agent) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post("/findmove", handleFindMove(agent))
	return r
}

// StartAgentServer starts an agent HTTP server on the given port.
func StartAgentServer(port string, agent Agent) error {
	log.Info().Msgf("starting agent server on :%s ...", port)
	return http.ListenAndServe(":"+port, NewRouter(agent))
}

func handleFindMove(agent Agent) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload FindMoveRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request: " + err.Error()})
			return
		}

		move, metric, err := agent.FindMove(&payload.Board, payload.Player)
		switch {
		case errors.Is(err, searcher.ErrNoMove):
			writeJSON(w, http.StatusOK, FindMoveResponse{Move: game.NoMove, Found: false, Metric: metric})
		case errors.Is(err, searcher.ErrContract):
			log.Warn().Err(err).Msg("rejected find move request")
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		case err != nil:
			log.Error().Err(err).Msg("find move failed")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		default:
			writeJSON(w, http.StatusOK, FindMoveResponse{Move: move, Found: true, Metric: metric})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

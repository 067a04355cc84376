package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
)

type remoteAgent struct {
	url    string
	client *http.Client
}

// RemoteAgent asks an agent server (see agent.StartAgentServer) for every move
func RemoteAgent(url string, timeout time.Duration) agent.Agent {
	return &remoteAgent{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (a *remoteAgent) FindMove(board *game.Board, player game.Color) (game.Move, metrics.SearchMetric, error) {
	body, err := json.Marshal(agent.FindMoveRequest{Board: *board, Player: player})
	if err != nil {
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := a.client.Post(a.url+"/findmove", "application/json", bytes.NewReader(body))
	if err != nil {
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, out)
	}

	var found agent.FindMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&found); err != nil {
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("failed to decode agent response: %w", err)
	}
	if !found.Found {
		return game.NoMove, found.Metric, searcher.ErrNoMove
	}
	return found.Move, found.Metric, nil
}

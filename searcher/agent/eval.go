package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type evaluationAgent struct {
	searcher *searcher.AlphaBeta
}

// NewEvaluationAgent returns a new agent that plays the alpha-beta decision.
func NewEvaluationAgent(ab *searcher.AlphaBeta) Agent {
	return evaluationAgent{searcher: ab}
}

func (a evaluationAgent) FindMove(board *game.Board, player game.Color) (game.Move, metrics.SearchMetric, error) {
	decision, err := a.searcher.Decide(board, player)
	if err != nil {
		return game.NoMove, metrics.SearchMetric{}, err
	}
	if !decision.Found {
		return game.NoMove, decision.Metric, searcher.ErrNoMove
	}
	return decision.Move, decision.Metric, nil
}

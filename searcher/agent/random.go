package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"sync"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rules game.Rules

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal move.
func NewRandomAgent(rules game.Rules, seed uint64) Agent {
	return &randomAgent{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent) FindMove(board *game.Board, player game.Color) (game.Move, metrics.SearchMetric, error) {
	moves := a.rules.SelectableTiles(board, player)
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, searcher.ErrNoMove
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}

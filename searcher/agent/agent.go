package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Agent interface {
	// FindMove returns the move to play and performance metrics (if collected) from
	// the search. searcher.ErrNoMove is returned when player has to pass.
	FindMove(board *game.Board, player game.Color) (game.Move, metrics.SearchMetric, error)
}

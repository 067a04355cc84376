package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

// MaxMoves bounds a game; a full Othello game never needs more than 60 placements
// plus passes
const MaxMoves = 200

type Runner interface {
	// Run plays a game till neither side can move or MaxMoves is reached
	Run() (winner game.Color, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

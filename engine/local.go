package engine

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Board  *game.Board
	Rules  game.Rules
	Player game.Color // Side to move
	Agents map[game.Color]agent.Agent
}

func LocalEngine(rules game.Rules, black, white agent.Agent) *Engine {
	if black == nil || white == nil {
		panic("need an agent for each color")
	}
	return &Engine{
		Board:  game.NewBoard(),
		Rules:  rules,
		Player: game.Black,
		Agents: map[game.Color]agent.Agent{game.Black: black, game.White: white},
	}
}

// Run executes the entire game loop until neither side can move. A side without a
// legal move passes; an agent that passes while it has legal moves plays the first one.
func (e *Engine) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.Player),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.Player)

	passes := 0
	for step := 1; passes < 2 && step <= MaxMoves; step++ {
		move, searchMetric, err := e.Agents[e.Player].FindMove(e.Board.Copy(), e.Player)
		if err != nil && !errors.Is(err, searcher.ErrNoMove) {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("agent for %s failed at step %d: %w", e.Player, step, err)
		}
		if err != nil {
			move = game.NoMove
		}

		// A pass only counts when the rules agree there is nothing to play
		move = e.legalize(move)
		if move == game.NoMove {
			log.Debug().Msgf("%s passes", e.Player)
			passes++
			gameMetric.Passes++
			e.Player = e.Player.Opponent()
			continue
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(e.Player),
			SearchMetric: searchMetric,
		})
		e.Rules.Play(e.Board, move, e.Player)
		gameMetric.TotalMoves++
		passes = 0
		e.Player = e.Player.Opponent()
	}

	winner := game.Winner(e.Board)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Winner = winner.String()
	gameMetric.BlackDiscs, gameMetric.WhiteDiscs = game.CountDiscs(e.Board)
	gameMetric.Margin = game.DiscDifferential(e.Board, game.Black)

	log.Info().Msgf("game over after %d moves: black %d, white %d, winner %s",
		gameMetric.TotalMoves, gameMetric.BlackDiscs, gameMetric.WhiteDiscs, winner)
	return winner, gameMetric, moveMetrics, nil
}

// legalize replaces a move the rules do not allow with the first legal one, and
// returns game.NoMove only when the side to move has no legal move
func (e *Engine) legalize(move game.Move) game.Move {
	legal := e.Rules.SelectableTiles(e.Board, e.Player)
	if len(legal) == 0 {
		if move != game.NoMove {
			log.Warn().Msgf("agent for %s returned move %s without any legal move, passing", e.Player, move)
		}
		return game.NoMove
	}
	if slices.Contains(legal, move) {
		return move
	}
	log.Warn().Msgf("agent for %s returned %s with %d legal moves, forcing %s", e.Player, move, len(legal), legal[0])
	return legal[0]
}

package searcher

import (
	"fmt"
	"othello/game"
	"sync"
)

// guard checks what the rules collaborator returns before the search relies on it.
// Invalid entries are dropped and the first violation is kept for Decide to report.
type guard struct {
	rules    game.Rules
	validate bool

	mu  sync.Mutex
	err error
}

func newGuard(rules game.Rules, validate bool) *guard {
	return &guard{rules: rules, validate: validate}
}

func (g *guard) SelectableTiles(b *game.Board, player game.Color) []game.Move {
	moves := g.rules.SelectableTiles(b, player)
	if !g.validate {
		return moves
	}

	valid := make([]game.Move, 0, len(moves))
	seen := make(map[game.Move]bool, len(moves))
	for _, move := range moves {
		switch {
		case !move.InBounds():
			g.fail(fmt.Errorf("%w: selectable tile %d is off the board", ErrContract, move))
		case b[move] != game.Empty:
			g.fail(fmt.Errorf("%w: selectable tile %d is occupied", ErrContract, move))
		case seen[move]:
			g.fail(fmt.Errorf("%w: selectable tile %d listed twice", ErrContract, move))
		default:
			seen[move] = true
			valid = append(valid, move)
		}
	}
	return valid
}

func (g *guard) SwappablePieces(b *game.Board, move game.Move, player game.Color) []int {
	pieces := g.rules.SwappablePieces(b, move, player)
	if !g.validate {
		return pieces
	}

	valid := make([]int, 0, len(pieces))
	for _, p := range pieces {
		if p < 0 || p >= game.NumTiles || b[p] != player.Opponent() {
			g.fail(fmt.Errorf("%w: tile %d cannot be captured by %s playing %d", ErrContract, p, player, move))
			continue
		}
		valid = append(valid, p)
	}
	return valid
}

func (g *guard) Play(b *game.Board, move game.Move, player game.Color) {
	g.rules.Play(b, move, player)
	if g.validate && b[move] != player {
		g.fail(fmt.Errorf("%w: playing %d did not place a %s disc", ErrContract, move, player))
	}
}

func (g *guard) fail(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.err == nil {
		g.err = err
	}
}

// Err returns the first violation seen, if any
func (g *guard) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.err
}

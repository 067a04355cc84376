package searcher

import (
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// brokenRules offers a tile that is already occupied
type brokenRules struct {
	*game.StandardRules
}

func (r brokenRules) SelectableTiles(b *game.Board, player game.Color) []game.Move {
	return append(r.StandardRules.SelectableTiles(b, player), 27)
}

// duplicateRules lists the first legal move twice
type duplicateRules struct {
	*game.StandardRules
}

func (r duplicateRules) SelectableTiles(b *game.Board, player game.Color) []game.Move {
	moves := r.StandardRules.SelectableTiles(b, player)
	if len(moves) == 0 {
		return moves
	}
	return append(moves, moves[0])
}

// offBoardRules offers a tile past the last one
type offBoardRules struct {
	*game.StandardRules
}

func (r offBoardRules) SelectableTiles(b *game.Board, player game.Color) []game.Move {
	return append(r.StandardRules.SelectableTiles(b, player), game.NumTiles)
}

// ownDiscRules claims every move also flips one of the mover's own discs
type ownDiscRules struct {
	*game.StandardRules
}

func (r ownDiscRules) SwappablePieces(b *game.Board, move game.Move, player game.Color) []int {
	pieces := r.StandardRules.SwappablePieces(b, move, player)
	for i, c := range b {
		if c == player {
			return append(pieces, i)
		}
	}
	return pieces
}

func TestDecide(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		ab := NewAlphaBeta(game.NewStandardRules(), WithDepth(3))
		board := game.NewBoard()

		first, err := ab.SelectMove(board, game.Black)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := ab.SelectMove(board, game.Black)
			require.NoError(t, err)
			require.Equal(t, first, again, "Same board, side and depth should give the same move")
		}
	})

	t.Run("does not modify the caller's board", func(t *testing.T) {
		ab := NewAlphaBeta(game.NewStandardRules(), WithDepth(2))
		board := game.NewBoard()

		_, err := ab.Decide(board, game.Black)

		require.NoError(t, err)
		require.Equal(t, *game.NewBoard(), *board)
	})

	t.Run("depth zero is a static evaluation", func(t *testing.T) {
		ab := NewAlphaBeta(game.NewStandardRules(), WithDepth(0))
		board := game.NewBoard()

		decision, err := ab.Decide(board, game.Black)

		require.NoError(t, err)
		require.True(t, decision.Root.IsLeaf(), "Depth 0 must not expand children")
		require.Equal(t, 1.0, decision.Utility, "Every opening move flips one disc")
		require.False(t, decision.Found, "No child means no move")
		require.Equal(t, game.NoMove, decision.Move)

		_, err = ab.SelectMove(board, game.Black)
		require.ErrorIs(t, err, ErrNoMove)
	})

	t.Run("no legal moves reports no move", func(t *testing.T) {
		ab := NewAlphaBeta(game.NewStandardRules())

		move, err := ab.SelectMove(&game.Board{}, game.White)

		require.ErrorIs(t, err, ErrNoMove)
		require.Equal(t, game.NoMove, move, "No tile index should be returned")
	})

	t.Run("picks the first child matching the root utility", func(t *testing.T) {
		ab := NewAlphaBeta(game.NewStandardRules(), WithDepth(2))

		decision, err := ab.Decide(game.NewBoard(), game.Black)
		require.NoError(t, err)

		require.True(t, decision.Found)
		for _, child := range decision.Root.Children {
			v, ok := child.Utility()
			require.True(t, ok)
			if v == decision.Utility {
				require.Equal(t, child.Move, decision.Move, "The first best child should be selected")
				break
			}
		}
		v, ok := decision.Root.Utility()
		require.True(t, ok)
		require.Equal(t, decision.Utility, v, "Root should store the search result")
	})

	t.Run("rejects an invalid player", func(t *testing.T) {
		ab := NewAlphaBeta(game.NewStandardRules())

		_, err := ab.Decide(game.NewBoard(), game.Empty)

		require.ErrorIs(t, err, ErrContract)
	})

	t.Run("surfaces a rules contract violation", func(t *testing.T) {
		ab := NewAlphaBeta(brokenRules{game.NewStandardRules()}, WithDepth(2))

		_, err := ab.SelectMove(game.NewBoard(), game.Black)

		require.ErrorIs(t, err, ErrContract)
	})

	t.Run("surfaces every kind of rules contract violation", func(t *testing.T) {
		broken := map[string]game.Rules{
			"occupied tile":  brokenRules{game.NewStandardRules()},
			"duplicate tile": duplicateRules{game.NewStandardRules()},
			"off board tile": offBoardRules{game.NewStandardRules()},
			"own disc flip":  ownDiscRules{game.NewStandardRules()},
		}
		for name, rules := range broken {
			for _, goroutines := range []int{1, 4} {
				ab := NewAlphaBeta(rules, WithDepth(2), WithGoroutines(goroutines))

				_, err := ab.SelectMove(game.NewBoard(), game.Black)

				require.ErrorIs(t, err, ErrContract, "%s should be reported with %d goroutines", name, goroutines)
			}
		}
	})

	t.Run("validation can be disabled", func(t *testing.T) {
		ab := NewAlphaBeta(brokenRules{game.NewStandardRules()}, WithDepth(1), WithValidation(false))

		_, err := ab.SelectMove(game.NewBoard(), game.Black)

		require.NoError(t, err)
	})

	t.Run("collects metrics", func(t *testing.T) {
		ab := NewAlphaBeta(game.NewStandardRules(), WithDepth(3), WithMetrics())

		decision, err := ab.Decide(game.NewBoard(), game.Black)

		require.NoError(t, err)
		require.Equal(t, 3, decision.Metric.Depth)
		require.Equal(t, 4+12+56, decision.Metric.NodesBuilt)
		require.Greater(t, decision.Metric.NodesVisited, 0)
		require.Greater(t, decision.Metric.LeafEvals, 0)
		require.Equal(t, decision.Utility, decision.Metric.Utility)
	})
}

func TestDecideOptionsAgree(t *testing.T) {
	rules := game.NewStandardRules()
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 15; trial++ {
		board, player := randomPosition(rng, rules, rng.Intn(24))
		want, err := NewAlphaBeta(rules, WithDepth(3), WithoutPruning()).Decide(board, player)
		require.NoError(t, err)

		variants := map[string]*AlphaBeta{
			"pruning":    NewAlphaBeta(rules, WithDepth(3)),
			"parallel":   NewAlphaBeta(rules, WithDepth(3), WithGoroutines(4)),
			"leaf only":  NewAlphaBeta(rules, WithDepth(3), WithLeafOnlyUtility()),
			"everything": NewAlphaBeta(rules, WithDepth(3), WithGoroutines(2), WithLeafOnlyUtility()),
		}
		for name, ab := range variants {
			got, err := ab.Decide(board, player)
			require.NoError(t, err)
			require.Equal(t, want.Utility, got.Utility, "%s should match minimax (trial %d)", name, trial)
			require.Equal(t, want.Found, got.Found, "%s (trial %d)", name, trial)
			require.Equal(t, want.Move, got.Move, "%s should choose the same move (trial %d)", name, trial)
		}
	}
}

func TestNewAlphaBeta(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		ab := NewAlphaBeta(game.NewStandardRules())

		require.Equal(t, DefaultDepth, ab.Depth())
		require.Equal(t, 1, ab.goroutines)
		require.True(t, ab.pruning)
		require.True(t, ab.validate)
	})

	t.Run("ignores invalid values", func(t *testing.T) {
		ab := NewAlphaBeta(game.NewStandardRules(), WithDepth(-1), WithGoroutines(0))

		require.Equal(t, DefaultDepth, ab.Depth())
		require.Equal(t, 1, ab.goroutines)
	})

	t.Run("panics without rules", func(t *testing.T) {
		require.Panics(t, func() {
			NewAlphaBeta(nil)
		})
	})
}

package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// evalMove is the single move a scripted leaf offers; it flips as many discs as the
// leaf's capture count
const evalMove game.Move = 63

// scriptedRules plays a fixed tree. Tile 0 of the board holds the id of the current
// node, and playing a move jumps to the child whose id equals the move.
type scriptedRules struct {
	children map[game.Color][]game.Color
	captures map[game.Color]int
}

func (r scriptedRules) SelectableTiles(b *game.Board, player game.Color) []game.Move {
	id := b[0]
	if kids, ok := r.children[id]; ok {
		moves := make([]game.Move, len(kids))
		for i, kid := range kids {
			moves[i] = game.Move(kid)
		}
		return moves
	}
	if _, ok := r.captures[id]; ok {
		return []game.Move{evalMove}
	}
	return []game.Move{}
}

func (r scriptedRules) SwappablePieces(b *game.Board, move game.Move, player game.Color) []int {
	if move != evalMove {
		return nil
	}
	return make([]int, r.captures[b[0]])
}

func (r scriptedRules) Play(b *game.Board, move game.Move, player game.Color) {
	b[0] = game.Color(move)
}

func scriptedBoard(id game.Color) *game.Board {
	b := &game.Board{}
	b[0] = id
	return b
}

// newScriptedSearch returns a search over rules for black at the root
func newScriptedSearch(rules game.Rules, pruning bool) *search {
	return &search{
		rules:   newGuard(rules, false),
		player:  game.Black,
		pruning: pruning,
		metrics: metrics.NewCollector(),
	}
}

func TestNewChild(t *testing.T) {
	t.Run("links a copy of the parent board", func(t *testing.T) {
		root := newRoot(game.NewBoard())

		child := newChild(root, 19)
		child.Board[19] = game.Black

		require.Equal(t, root, child.Parent, "Child should point back to its parent")
		require.Equal(t, []*Node{child}, root.Children, "Parent should own the child")
		require.Equal(t, game.Move(19), child.Move, "Child should record the move")
		require.Equal(t, game.Empty, root.Board[19], "Mutating the child board must not touch the parent")
	})

	t.Run("alternates sides", func(t *testing.T) {
		root := newRoot(&game.Board{})
		child := newChild(root, 0)
		grandChild := newChild(child, 1)

		require.Equal(t, Maximizer, root.Side, "Root should be the maximizer")
		require.Equal(t, Minimizer, child.Side)
		require.Equal(t, Maximizer, grandChild.Side)
	})
}

func TestNodeUtility(t *testing.T) {
	node := newRoot(&game.Board{})

	_, ok := node.Utility()
	require.False(t, ok, "Utility should be unset before search")

	node.setUtility(3)
	got, ok := node.Utility()
	require.True(t, ok)
	require.Equal(t, 3.0, got)
}

func TestNodeLine(t *testing.T) {
	root := newRoot(&game.Board{})
	child := newChild(root, 5)
	grandChild := newChild(child, 9)

	require.Equal(t, 0, root.Depth())
	require.Equal(t, 2, grandChild.Depth())
	require.Empty(t, root.Line(), "Root has no moves behind it")
	require.Equal(t, []game.Move{5, 9}, grandChild.Line())
	require.Equal(t, 3, root.Size())
}

package searcher

import "othello/game"

// expand builds depth plies below node. The mover is passed down explicitly, so
// building a tree never touches any turn state outside the call.
func (s *search) expand(node *Node, depth int, mover game.Color) {
	if depth <= 0 {
		return
	}

	for _, move := range s.rules.SelectableTiles(&node.Board, mover) {
		child := newChild(node, move)
		s.rules.Play(&child.Board, move, mover)
		s.metrics.AddNode()
	}

	for _, child := range node.Children {
		s.expand(child, depth-1, mover.Opponent())
	}
}

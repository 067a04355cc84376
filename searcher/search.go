package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// search holds the state of a single decision. Everything a decision mutates lives
// either here or in the tree it builds.
type search struct {
	rules    *guard
	player   game.Color // Side to move at the root
	pruning  bool
	leafOnly bool
	metrics  metrics.Collector
}

// mover returns the color to move at node
func (s *search) mover(node *Node) game.Color {
	if node.Side == Maximizer {
		return s.player
	}
	return s.player.Opponent()
}

func (s *search) run(node *Node, depth int) float64 {
	if !s.pruning {
		return s.minimax(node, depth)
	}
	return s.alphaBeta(node, depth, negInf, posInf)
}

func (s *search) alphaBeta(node *Node, depth int, alpha, beta float64) float64 {
	s.metrics.AddVisit()

	// A node without children is terminal whatever depth remains
	if depth <= 0 || node.IsLeaf() {
		return s.evaluateLeaf(node)
	}

	var best float64
	if node.Side == Maximizer {
		best = negInf
		for _, child := range node.Children {
			v := s.alphaBeta(child, depth-1, alpha, beta)
			best = max(best, v)
			alpha = max(alpha, v)
			if beta <= alpha {
				s.metrics.AddCutoff()
				break
			}
		}
	} else {
		best = posInf
		for _, child := range node.Children {
			v := s.alphaBeta(child, depth-1, alpha, beta)
			best = min(best, v)
			beta = min(beta, v)
			if beta <= alpha {
				s.metrics.AddCutoff()
				break
			}
		}
	}

	if !s.leafOnly {
		node.setUtility(best)
	}
	return best
}

func (s *search) evaluateLeaf(node *Node) float64 {
	utility := s.evaluate(node)
	node.setUtility(utility)
	return utility
}

// choose returns the move of the first root child whose utility equals the root's.
// Children without a stored utility are searched again with a full window.
func (s *search) choose(root *Node, depth int, utility float64) (game.Move, bool) {
	for _, child := range root.Children {
		v, ok := child.Utility()
		if !ok {
			v = s.run(child, depth-1)
		}
		if v == utility {
			return child.Move, true
		}
	}
	return game.NoMove, false
}

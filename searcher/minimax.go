package searcher

// minimax evaluates the whole tree without pruning
func (s *search) minimax(node *Node, depth int) float64 {
	s.metrics.AddVisit()

	if depth <= 0 || node.IsLeaf() {
		return s.evaluateLeaf(node)
	}

	best := negInf
	if node.Side == Minimizer {
		best = posInf
	}
	for _, child := range node.Children {
		v := s.minimax(child, depth-1)
		if node.Side == Maximizer {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}

	if !s.leafOnly {
		node.setUtility(best)
	}
	return best
}

package searcher

// evaluate scores a leaf by looking one ply ahead: every move available to the side
// to move is worth the number of discs it would flip, and the node folds those with
// max or min according to its side. The fold starts from the node's current utility,
// zero unless already evaluated, so calling it again gives the same result.
func (s *search) evaluate(node *Node) float64 {
	s.metrics.AddLeafEval()

	mover := s.mover(node)
	utility, _ := node.Utility()
	for _, move := range s.rules.SelectableTiles(&node.Board, mover) {
		captured := float64(len(s.rules.SwappablePieces(&node.Board, move, mover)))
		if node.Side == Maximizer {
			utility = max(utility, captured)
		} else {
			utility = min(utility, captured)
		}
	}
	return utility
}

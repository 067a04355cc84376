package searcher

import "othello/game"

// Node is one position in the searched tree. A node owns its board and its children;
// Parent is only a back pointer for walking upwards.
type Node struct {
	Board    game.Board
	Parent   *Node
	Children []*Node
	Side     Side
	Move     game.Move // Move that produced Board from the parent's board

	utility   float64
	evaluated bool
}

func newRoot(board *game.Board) *Node {
	return &Node{
		Board: *board,
		Side:  Maximizer,
		Move:  game.NoMove,
	}
}

// newChild links a copy of the parent's board under parent. The caller applies the move.
func newChild(parent *Node, move game.Move) *Node {
	child := &Node{
		Board:  parent.Board,
		Parent: parent,
		Side:   parent.Side.Opposite(),
		Move:   move,
	}
	parent.Children = append(parent.Children, child)
	return child
}

// Utility returns the value search computed for this node, and false if search has
// not stored one
func (n *Node) Utility() (float64, bool) {
	return n.utility, n.evaluated
}

func (n *Node) setUtility(utility float64) {
	n.utility = utility
	n.evaluated = true
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *Node) Depth() int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// Line returns the moves leading from the root to this node
func (n *Node) Line() []game.Move {
	line := make([]game.Move, n.Depth())
	i := len(line) - 1
	for node := n; node.Parent != nil; node = node.Parent {
		line[i] = node.Move
		i--
	}
	return line
}

// Size counts the nodes in the subtree rooted at n
func (n *Node) Size() int {
	size := 1
	for _, child := range n.Children {
		size += child.Size()
	}
	return size
}

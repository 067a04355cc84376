package game

// directions as (row, col) steps
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// StandardRules implements the usual 8x8 Othello rules: a move must bracket at least
// one straight line of opponent discs, and every bracketed line flips.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

// NewBoard returns the standard opening position
func NewBoard() *Board {
	b := &Board{}
	mid := BoardSize / 2
	b[(mid-1)*BoardSize+mid-1], b[mid*BoardSize+mid] = White, White
	b[(mid-1)*BoardSize+mid], b[mid*BoardSize+mid-1] = Black, Black
	return b
}

func (sr *StandardRules) SelectableTiles(b *Board, player Color) []Move {
	moves := []Move{}
	for i := range b {
		move := Move(i)
		if b[i] != Empty {
			continue
		}
		if sr.flipsAny(b, move, player) {
			moves = append(moves, move)
		}
	}
	return moves
}

func (sr *StandardRules) SwappablePieces(b *Board, move Move, player Color) []int {
	if !move.InBounds() || b[move] != Empty {
		return nil
	}

	pieces := []int{}
	row, col := int(move)/BoardSize, int(move)%BoardSize
	for _, d := range directions {
		pieces = append(pieces, bracketed(b, row, col, d, player)...)
	}
	return pieces
}

func (sr *StandardRules) Play(b *Board, move Move, player Color) {
	pieces := sr.SwappablePieces(b, move, player)
	if len(pieces) == 0 {
		return
	}
	b[move] = player
	for _, p := range pieces {
		b[p] = player
	}
}

func (sr *StandardRules) flipsAny(b *Board, move Move, player Color) bool {
	row, col := int(move)/BoardSize, int(move)%BoardSize
	for _, d := range directions {
		if len(bracketed(b, row, col, d, player)) > 0 {
			return true
		}
	}
	return false
}

// bracketed walks from (row, col) in direction d and returns the opponent discs
// enclosed by a disc of player, or nil if the line is not closed
func bracketed(b *Board, row, col int, d [2]int, player Color) []int {
	var line []int
	r, c := row+d[0], col+d[1]
	for onBoard(r, c) {
		idx := r*BoardSize + c
		switch b[idx] {
		case player.Opponent():
			line = append(line, idx)
		case player:
			return line
		default:
			return nil
		}
		r, c = r+d[0], c+d[1]
	}
	return nil
}

func onBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

package game

import "strings"

const (
	BoardSize = 8
	NumTiles  = BoardSize * BoardSize
)

// Color is the value held by a tile. Players are identified by the color of their
// discs, so a Color is also used as "whose turn".
type Color int8

const (
	White Color = -1
	Empty Color = 0
	Black Color = 1
)

func (c Color) Opponent() Color {
	return -c
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Move identifies a tile index on the board
type Move int

// NoMove is never returned as a legal move
const NoMove Move = -1

func (m Move) InBounds() bool {
	return m >= 0 && m < NumTiles
}

// Board is a complete snapshot of the game. It is an array, so assignment copies it.
type Board [NumTiles]Color

func (b *Board) Copy() *Board {
	c := *b
	return &c
}

func (b *Board) At(row, col int) Color {
	return b[row*BoardSize+col]
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b.At(row, col) {
			case Black:
				sb.WriteString("X ")
			case White:
				sb.WriteString("O ")
			default:
				sb.WriteString("_ ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ParseBoard reads the format produced by Board.String. Whitespace is ignored.
func ParseBoard(s string) (*Board, bool) {
	var b Board
	i := 0
	for _, r := range s {
		var c Color
		switch r {
		case 'X', 'x':
			c = Black
		case 'O', 'o':
			c = White
		case '_', '.':
			c = Empty
		default:
			continue
		}
		if i >= NumTiles {
			return nil, false
		}
		b[i] = c
		i++
	}
	if i != NumTiles {
		return nil, false
	}
	return &b, true
}

// String renders a move in column-row notation, e.g. "d3"
func (m Move) String() string {
	if !m.InBounds() {
		return "pass"
	}
	return string(rune('a'+int(m)%BoardSize)) + string(rune('1'+int(m)/BoardSize))
}

// ParseMove reads column-row notation as produced by Move.String
func ParseMove(s string) (Move, bool) {
	if len(s) != 2 {
		return NoMove, false
	}
	col := int(s[0]|0x20) - 'a' // lower case
	row := int(s[1]) - '1'
	if !onBoard(row, col) {
		return NoMove, false
	}
	return Move(row*BoardSize + col), true
}

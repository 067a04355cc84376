package player

import (
	"othello/game"
	"othello/searcher"
)

// Player is the computer side of a hosted game. Turn is the host's "whose turn"
// context; choosing a tile reads it and never changes it.
type Player struct {
	Turn     game.Color
	searcher *searcher.AlphaBeta
}

// NewPlayer creates a Player that searches with ab.
func NewPlayer(turn game.Color, ab *searcher.AlphaBeta) *Player {
	return &Player{
		Turn:     turn,
		searcher: ab,
	}
}

// SelectTile returns the tile to play on board for the current turn, or
// searcher.ErrNoMove when the side to move has to pass.
func (p *Player) SelectTile(board *game.Board) (game.Move, error) {
	return p.searcher.SelectMove(board, p.Turn)
}

package game

// Rules decides which tiles are playable and which discs flip. Searchers only
// reach the board through this interface.
type Rules interface {
	// SelectableTiles returns the legal moves for player, in ascending tile order
	SelectableTiles(b *Board, player Color) []Move
	// SwappablePieces returns the opponent discs that player would flip by playing move
	SwappablePieces(b *Board, move Move, player Color) []int
	// Play applies move for player in place, flipping captured discs
	Play(b *Board, move Move, player Color)
}

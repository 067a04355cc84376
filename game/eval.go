package game

// CountDiscs tallies discs of each color
func CountDiscs(b *Board) (black, white int) {
	for _, c := range b {
		switch c {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

// Winner returns the color with more discs, or Empty on a draw
func Winner(b *Board) Color {
	black, white := CountDiscs(b)
	if black > white {
		return Black
	} else if white > black {
		return White
	}
	return Empty
}

// DiscDifferential is a score between -1 and 1 indicating how far player leads on discs
func DiscDifferential(b *Board, player Color) float64 {
	black, white := CountDiscs(b)
	if player == Black {
		return normalize(float64(black), float64(white))
	}
	return normalize(float64(white), float64(black))
}

// IsOver reports whether neither player has a legal move
func IsOver(rules Rules, b *Board) bool {
	return len(rules.SelectableTiles(b, Black)) == 0 && len(rules.SelectableTiles(b, White)) == 0
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}

package game

import "kingsiege/utils"

// MovesFrom computes the legal destinations for the piece at from on the
// given board.
//
// King: the 8 adjacent squares that are in-bounds, hold Empty or a Knight
// (the King captures by moving onto a Knight), and are not under attack.
// Knight: the 8 L-shaped squares that are in-bounds and Empty; Knights never
// capture or stack.
//
// An out-of-bounds or empty from square yields no moves rather than an error.
func MovesFrom(b *Board, from Position) []Position {
	if !b.InBounds(from) {
		return nil
	}

	var offsets [8]Position
	switch b.At(from) {
	case King:
		offsets = kingOffsets
	case Knight:
		offsets = knightOffsets
	default:
		return nil
	}

	piece := b.At(from)
	var moves []Position
	for _, off := range offsets {
		to := Position{from.Row + off.Row, from.Col + off.Col}
		if !b.InBounds(to) {
			continue
		}
		target := b.At(to)
		switch piece {
		case King:
			if (target == Empty || target == Knight) && !b.UnderAttack(to) {
				moves = append(moves, to)
			}
		case Knight:
			if target == Empty {
				moves = append(moves, to)
			}
		}
	}
	return moves
}

// containsPosition reports whether p is among the candidate destinations.
func containsPosition(moves []Position, p Position) bool {
	return utils.FindIndex(moves, p) >= 0
}

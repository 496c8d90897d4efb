package game

// EvaluateKnights scores the position from the Knight side's perspective by
// summing independent component scores. It is deterministic and reads the
// state without mutating it; callers pass a scratch copy when scoring
// hypothetical moves.
func EvaluateKnights(gs *GameState) float64 {
	knights := gs.Board.Positions(Knight)
	kingMoves := MovesFrom(&gs.Board, gs.KingPos)

	score := attritionScore(knights)
	score += mobilityScore(kingMoves)
	score += proximityScore(&gs.Board, knights, gs.KingPos)
	score += encirclementScore(&gs.Board, gs.KingPos)
	score += zoneDenialScore(knights, gs.KingPos, gs.Rules.SafeZones())
	score += checkScore(&gs.Board, gs.KingPos)
	score += siegeScore(gs.TurnCount)
	return score
}

// attritionScore rewards keeping Knights on the board.
func attritionScore(knights []Position) float64 {
	return float64(len(knights)) * 15
}

// mobilityScore rewards restricting the King's movement.
func mobilityScore(kingMoves []Position) float64 {
	return -float64(len(kingMoves)) * 10
}

// proximityScore rewards Knights close to the King: +5 for each Knight that
// can reach a square within Manhattan distance 2 of the King in one move,
// plus a closeness bonus on the mean distance. The (7 - average) form is
// kept even though the average cannot exceed 7 on a 5x5 board.
func proximityScore(b *Board, knights []Position, kingPos Position) float64 {
	score := 0.0
	totalDistance := 0
	for _, knight := range knights {
		totalDistance += Manhattan(knight, kingPos)

		for _, dest := range MovesFrom(b, knight) {
			if Manhattan(dest, kingPos) <= 2 {
				score += 5
				break
			}
		}
	}
	if len(knights) > 0 {
		avgDistance := float64(totalDistance) / float64(len(knights))
		score += (7 - avgDistance) * 8
	}
	return score
}

// encirclementScore heavily rewards Knights already at knight-move offsets
// around the King.
func encirclementScore(b *Board, kingPos Position) float64 {
	surrounding := 0
	for _, off := range knightOffsets {
		n := Position{kingPos.Row + off.Row, kingPos.Col + off.Col}
		if b.InBounds(n) && b.At(n) == Knight {
			surrounding++
		}
	}
	return float64(surrounding) * 20
}

// zoneDenialScore rewards Knights parked near safe zones, with an extra
// bonus for covering the zone closest to the King.
func zoneDenialScore(knights []Position, kingPos Position, zones []Position) float64 {
	if len(zones) == 0 {
		return 0
	}

	score := 0.0
	for _, zone := range zones {
		for _, knight := range knights {
			if Manhattan(knight, zone) <= 2 {
				score += 10
			}
		}
	}

	minDistance := Manhattan(kingPos, zones[0])
	for _, zone := range zones[1:] {
		if d := Manhattan(kingPos, zone); d < minDistance {
			minDistance = d
		}
	}
	for _, knight := range knights {
		for _, zone := range zones {
			if Manhattan(kingPos, zone) == minDistance && Manhattan(zone, knight) <= 2 {
				score += 15
			}
		}
	}
	return score
}

// checkScore rewards putting the King's square under attack.
func checkScore(b *Board, kingPos Position) float64 {
	if b.UnderAttack(kingPos) {
		return 25
	}
	return 0
}

// siegeScore rewards game length; a long game favors the Knights.
func siegeScore(turnCount int) float64 {
	return float64(turnCount) * 2
}

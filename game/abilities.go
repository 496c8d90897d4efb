package game

import "github.com/rs/zerolog/log"

// ActivateCharge triggers Royal Charge: the King may move exactly two
// grid-steps in any of the 8 directions, landing on an in-bounds square that
// is Empty or holds a Knight and is not under attack. Activation only
// selects the King and replaces its move options; the board does not change
// until the resulting move goes through ApplyMove. A successful activation
// starts the cooldown.
func (gs *GameState) ActivateCharge() bool {
	if gs.gameOver || gs.Turn != KingTurn || gs.ChargeCooldown > 0 {
		log.Warn().Msgf("royal charge rejected: cooldown %d", gs.ChargeCooldown)
		return false
	}

	var moves []Position
	for _, off := range kingOffsets {
		to := Position{gs.KingPos.Row + off.Row*2, gs.KingPos.Col + off.Col*2}
		if !gs.Board.InBounds(to) {
			continue
		}
		target := gs.Board.At(to)
		if (target == Empty || target == Knight) && !gs.Board.UnderAttack(to) {
			moves = append(moves, to)
		}
	}
	if len(moves) == 0 {
		log.Info().Msg("royal charge failed: no valid extended moves")
		return false
	}

	king := gs.KingPos
	gs.selected = &king
	gs.options = moves
	gs.ChargeCooldown = gs.Rules.ChargeCooldownTurns()
	log.Info().Msgf("royal charge activated with %d options", len(moves))
	return true
}

// ActivateEscape triggers Royal Escape, the King's one-shot teleport: every
// Empty square that is neither under attack nor king-adjacent to a Knight
// becomes a move option, plus any Empty safe zone. A successful activation
// consumes the ability for the rest of the game; only undoing past the
// activation itself restores it, since the flag rides in every snapshot.
func (gs *GameState) ActivateEscape() bool {
	if gs.gameOver || gs.Turn != KingTurn || !gs.EscapeAvailable {
		log.Warn().Msg("royal escape rejected: not available")
		return false
	}

	var moves []Position
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			p := Position{r, c}
			if gs.Board.At(p) != Empty || gs.Board.UnderAttack(p) {
				continue
			}
			if gs.adjacentToKnight(p) {
				continue
			}
			moves = append(moves, p)
		}
	}
	for _, zone := range gs.Rules.SafeZones() {
		if gs.Board.InBounds(zone) && gs.Board.At(zone) == Empty && !containsPosition(moves, zone) {
			moves = append(moves, zone)
		}
	}
	if len(moves) == 0 {
		log.Info().Msg("royal escape failed: no valid escape squares")
		return false
	}

	king := gs.KingPos
	gs.selected = &king
	gs.options = moves
	gs.EscapeAvailable = false
	log.Info().Msgf("royal escape activated with %d options", len(moves))
	return true
}

func (gs *GameState) adjacentToKnight(p Position) bool {
	for _, off := range kingOffsets {
		n := Position{p.Row + off.Row, p.Col + off.Col}
		if gs.Board.InBounds(n) && gs.Board.At(n) == Knight {
			return true
		}
	}
	return false
}

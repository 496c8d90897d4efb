package game

import "github.com/rs/zerolog/log"

// MoveRecord snapshots the complete pre-move state: the full board plus
// every scalar field. Undo restores a record verbatim instead of re-deriving
// anything, which keeps it correct across ability activations because the
// cooldown and escape flags are part of every snapshot.
type MoveRecord struct {
	Board           Board    `json:"board"`
	From            Position `json:"from"`
	To              Position `json:"to"`
	Piece           Cell     `json:"piece"`
	Captured        Cell     `json:"captured"`
	Turn            int      `json:"turn"`
	TurnCount       int      `json:"turn_count"`
	KingPos         Position `json:"king_pos"`
	KingKills       int      `json:"king_kills"`
	ChargeCooldown  int      `json:"charge_cooldown"`
	EscapeAvailable bool     `json:"escape_available"`
}

func (gs *GameState) pushRecord(from, to Position) {
	gs.history = append(gs.history, MoveRecord{
		Board:           gs.Board,
		From:            from,
		To:              to,
		Piece:           gs.Board.At(from),
		Captured:        gs.Board.At(to),
		Turn:            gs.Turn,
		TurnCount:       gs.TurnCount,
		KingPos:         gs.KingPos,
		KingKills:       gs.KingKills,
		ChargeCooldown:  gs.ChargeCooldown,
		EscapeAvailable: gs.EscapeAvailable,
	})
}

// Undo reverts the most recent move by restoring its snapshot. It is a
// logged no-op when there is nothing to undo.
func (gs *GameState) Undo() bool {
	if len(gs.history) == 0 {
		log.Warn().Msg("undo rejected: move history is empty")
		return false
	}

	record := gs.history[len(gs.history)-1]
	gs.history = gs.history[:len(gs.history)-1]

	gs.Board = record.Board
	gs.Turn = record.Turn
	gs.TurnCount = record.TurnCount
	gs.KingPos = record.KingPos
	gs.KingKills = record.KingKills
	gs.ChargeCooldown = record.ChargeCooldown
	gs.EscapeAvailable = record.EscapeAvailable

	gs.gameOver = false
	gs.winner = NoWinner
	gs.LastEvent = EventNone
	gs.clearSelection()
	return true
}

// HistoryLen is the number of moves that can be undone.
func (gs *GameState) HistoryLen() int {
	return len(gs.history)
}

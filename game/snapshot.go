package game

import (
	"encoding/json"
	"fmt"
)

// snapshot is the serialized form of a GameState: the board, every scalar
// field, and the full move-history stack. Rules and hooks are wiring, not
// state, so the caller supplies them again on restore.
type snapshot struct {
	Board           Board        `json:"board"`
	Turn            int          `json:"turn"`
	TurnCount       int          `json:"turn_count"`
	KingPos         Position     `json:"king_pos"`
	KingKills       int          `json:"king_kills"`
	ChargeCooldown  int          `json:"charge_cooldown"`
	EscapeAvailable bool         `json:"escape_available"`
	GameOver        bool         `json:"game_over"`
	Winner          int          `json:"winner"`
	History         []MoveRecord `json:"history"`
}

// Snapshot serializes the complete state, history stack included, as an
// opaque byte slice.
func (gs *GameState) Snapshot() ([]byte, error) {
	snap := snapshot{
		Board:           gs.Board,
		Turn:            gs.Turn,
		TurnCount:       gs.TurnCount,
		KingPos:         gs.KingPos,
		KingKills:       gs.KingKills,
		ChargeCooldown:  gs.ChargeCooldown,
		EscapeAvailable: gs.EscapeAvailable,
		GameOver:        gs.gameOver,
		Winner:          gs.winner,
		History:         gs.history,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize game state: %w", err)
	}
	return data, nil
}

// RestoreSnapshot reconstructs a GameState from Snapshot output under the
// given rules. The selection cache is transient and starts cleared.
func RestoreSnapshot(data []byte, rules Rules, opts ...Option) (*GameState, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to deserialize game state: %w", err)
	}

	gs := &GameState{
		Board:           snap.Board,
		Rules:           rules,
		Turn:            snap.Turn,
		TurnCount:       snap.TurnCount,
		KingPos:         snap.KingPos,
		KingKills:       snap.KingKills,
		ChargeCooldown:  snap.ChargeCooldown,
		EscapeAvailable: snap.EscapeAvailable,
		gameOver:        snap.GameOver,
		winner:          snap.Winner,
		history:         snap.History,
	}
	for _, opt := range opts {
		opt(gs)
	}
	return gs, nil
}

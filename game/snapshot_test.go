package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Run("restores a mid-game state with full history", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())
		require.True(t, gs.ApplyMove(Position{2, 2}, Position{1, 1}))
		require.True(t, gs.ApplyMove(Position{0, 4}, Position{1, 2}))
		require.True(t, gs.ActivateCharge())
		require.True(t, gs.ApplyMove(Position{1, 1}, Position{1, 3}))

		data, err := gs.Snapshot()
		require.NoError(t, err)

		restored, err := RestoreSnapshot(data, gs.Rules)
		require.NoError(t, err)

		require.Equal(t, gs.Hash(), restored.Hash(), "Restored state should hash identically")
		require.Equal(t, gs.Board, restored.Board)
		require.Equal(t, gs.KingPos, restored.KingPos)
		require.Equal(t, gs.ChargeCooldown, restored.ChargeCooldown)
		require.Equal(t, gs.EscapeAvailable, restored.EscapeAvailable)
		require.Equal(t, gs.HistoryLen(), restored.HistoryLen(), "History stack must survive the round trip")
	})

	t.Run("undo works on a restored state", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())
		require.True(t, gs.ApplyMove(Position{2, 2}, Position{1, 1}))

		data, err := gs.Snapshot()
		require.NoError(t, err)
		restored, err := RestoreSnapshot(data, gs.Rules)
		require.NoError(t, err)

		require.True(t, gs.Undo())
		require.True(t, restored.Undo())
		require.Equal(t, gs.Hash(), restored.Hash(),
			"Undo on the restored state should match undo on the original")
	})

	t.Run("preserves a finished game", func(t *testing.T) {
		b := boardWith(map[Position]Cell{
			{2, 2}: King,
			{1, 1}: Knight,
		})
		gs := stateWith(b, NewStandardRules(), KingTurn)
		require.True(t, gs.ApplyMove(Position{2, 2}, Position{1, 1}))
		require.True(t, gs.IsGameOver())

		data, err := gs.Snapshot()
		require.NoError(t, err)
		restored, err := RestoreSnapshot(data, gs.Rules)
		require.NoError(t, err)

		require.True(t, restored.IsGameOver())
		require.Equal(t, KingWinner, restored.Winner())
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := RestoreSnapshot([]byte("not json"), NewStandardRules())
		require.Error(t, err)
	})
}

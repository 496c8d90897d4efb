package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardWith builds a board from explicit placements.
func boardWith(pieces map[Position]Cell) Board {
	var b Board
	for p, c := range pieces {
		b.Set(p, c)
	}
	return b
}

// stateWith wires a hand-built board into a playable state.
func stateWith(b Board, rules Rules, turn int) *GameState {
	kingPos, _ := b.FindKing()
	return &GameState{
		Board:           b,
		Rules:           rules,
		Turn:            turn,
		TurnCount:       1,
		KingPos:         kingPos,
		EscapeAvailable: true,
	}
}

func TestNewGameState(t *testing.T) {
	gs := NewGameState(NewStandardRules())

	require.Equal(t, KingTurn, gs.Turn, "King side should move first")
	require.Equal(t, 1, gs.TurnCount)
	require.Equal(t, Position{2, 2}, gs.KingPos)
	require.Equal(t, 0, gs.KingKills)
	require.Equal(t, 0, gs.ChargeCooldown)
	require.True(t, gs.EscapeAvailable)
	require.False(t, gs.IsGameOver())
	require.Equal(t, NoWinner, gs.Winner())
	require.Equal(t, 0, gs.HistoryLen())
}

func TestSelect(t *testing.T) {
	t.Run("selecting own piece returns its moves", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())

		moves, ok := gs.Select(Position{2, 2})

		require.True(t, ok)
		require.NotEmpty(t, moves)
	})

	t.Run("selecting the opponent's piece fails", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())

		_, ok := gs.Select(Position{0, 0})

		require.False(t, ok, "King side cannot select a knight")
	})

	t.Run("selecting an empty or out-of-bounds square fails", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())

		_, ok := gs.Select(Position{1, 1})
		require.False(t, ok)

		_, ok = gs.Select(Position{9, 9})
		require.False(t, ok)
	})
}

func TestApplyMoveCapture(t *testing.T) {
	// King at the center with a capturable knight on (1,1) and the rest of
	// the pack in far corners.
	b := boardWith(map[Position]Cell{
		{2, 2}: King,
		{1, 1}: Knight,
		{0, 4}: Knight,
		{4, 0}: Knight,
		{4, 4}: Knight,
	})
	var capturedAt []Position
	gs := stateWith(b, NewStandardRules(), KingTurn)
	gs.onCapture = func(p Position) { capturedAt = append(capturedAt, p) }

	ok := gs.ApplyMove(Position{2, 2}, Position{1, 1})

	require.True(t, ok)
	require.Equal(t, 1, gs.KingKills, "Capturing a knight should count a kill")
	require.Equal(t, King, gs.Board.At(Position{1, 1}), "Captured square should now hold the king")
	require.Equal(t, Empty, gs.Board.At(Position{2, 2}))
	require.Equal(t, Position{1, 1}, gs.KingPos, "Cached king position should follow the king")
	require.Equal(t, KnightTurn, gs.Turn, "Turn should pass to the knights")
	require.Equal(t, 1, gs.TurnCount, "Round counter advances only after the knights move")
	require.Equal(t, EventKnightCaptured, gs.LastEvent)
	require.Equal(t, []Position{{1, 1}}, capturedAt, "Capture hook should fire with the square")
	require.False(t, gs.IsGameOver())
}

func TestApplyMoveRejectsIllegal(t *testing.T) {
	t.Run("destination outside the legal set", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())
		before := gs.Hash()

		ok := gs.ApplyMove(Position{2, 2}, Position{0, 0})

		require.False(t, ok)
		require.Equal(t, before, gs.Hash(), "Failed move must not change state")
		require.Equal(t, 0, gs.HistoryLen())
	})

	t.Run("moving the opponent's piece", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())

		ok := gs.ApplyMove(Position{0, 0}, Position{1, 2})

		require.False(t, ok, "King side must not move a knight")
	})

	t.Run("out-of-bounds positions", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())

		require.False(t, gs.ApplyMove(Position{-1, 0}, Position{0, 0}))
		require.False(t, gs.ApplyMove(Position{2, 2}, Position{2, 7}))
	})

	t.Run("any move after the game ended", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())
		gs.gameOver = true
		gs.winner = KnightWinner

		require.False(t, gs.ApplyMove(Position{2, 2}, Position{2, 3}))
	})
}

func TestUndoRoundTrip(t *testing.T) {
	t.Run("restores every field after a capture", func(t *testing.T) {
		b := boardWith(map[Position]Cell{
			{2, 2}: King,
			{1, 1}: Knight,
			{4, 4}: Knight,
		})
		gs := stateWith(b, NewStandardRules(), KingTurn)
		gs.ChargeCooldown = 3
		before := gs.Hash()
		boardBefore := gs.Board

		require.True(t, gs.ApplyMove(Position{2, 2}, Position{1, 1}))
		require.True(t, gs.Undo())

		require.Equal(t, before, gs.Hash(), "Undo should restore the exact pre-move state")
		require.Equal(t, boardBefore, gs.Board)
		require.Equal(t, KingTurn, gs.Turn)
		require.Equal(t, 1, gs.TurnCount)
		require.Equal(t, 0, gs.KingKills)
		require.Equal(t, Position{2, 2}, gs.KingPos)
		require.Equal(t, 3, gs.ChargeCooldown)
		require.True(t, gs.EscapeAvailable)
		require.False(t, gs.IsGameOver())
		require.Equal(t, NoWinner, gs.Winner())
	})

	t.Run("round trips every legal opening move", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())
		before := gs.Hash()

		for _, to := range gs.LegalMoves(Position{2, 2}) {
			require.True(t, gs.ApplyMove(Position{2, 2}, to))
			require.True(t, gs.Undo())
			require.Equal(t, before, gs.Hash(), "Apply then undo must be identity for move to %v", to)
		}
	})

	t.Run("no-op with empty history", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())

		require.False(t, gs.Undo())
	})

	t.Run("clears a terminal result", func(t *testing.T) {
		b := boardWith(map[Position]Cell{
			{2, 2}: King,
			{1, 1}: Knight, // Last knight; capturing it ends the game
		})
		gs := stateWith(b, NewStandardRules(), KingTurn)

		require.True(t, gs.ApplyMove(Position{2, 2}, Position{1, 1}))
		require.True(t, gs.IsGameOver())
		require.Equal(t, KingWinner, gs.Winner())

		require.True(t, gs.Undo())
		require.False(t, gs.IsGameOver())
		require.Equal(t, NoWinner, gs.Winner())
	})
}

func TestTerminalPriority(t *testing.T) {
	t.Run("safe zone beats siege", func(t *testing.T) {
		rules := NewStandardRules().WithSafeZones(Position{0, 2})
		b := boardWith(map[Position]Cell{
			{0, 2}: King,
			{4, 4}: Knight,
		})
		gs := stateWith(b, rules, KingTurn)
		gs.TurnCount = 35 // Siege limit is long past

		gs.checkGameOver()

		require.True(t, gs.IsGameOver())
		require.Equal(t, KingWinner, gs.Winner(),
			"Safe-zone victory has priority over the siege condition")
	})

	t.Run("kill target beats surround", func(t *testing.T) {
		b := boardWith(map[Position]Cell{
			{2, 2}: King,
			{0, 1}: Knight,
			{0, 3}: Knight,
			{1, 0}: Knight,
		})
		gs := stateWith(b, NewStandardRules(), KingTurn)
		gs.KingKills = 3

		gs.checkGameOver()

		require.True(t, gs.IsGameOver())
		require.Equal(t, KingWinner, gs.Winner(),
			"Capture-target victory has priority over the surround condition")
	})
}

func TestKnightSurroundVictory(t *testing.T) {
	// Two knights already sit at knight-move offsets from the king; a third
	// completes the surround by landing on (4,1).
	b := boardWith(map[Position]Cell{
		{2, 2}: King,
		{0, 1}: Knight,
		{0, 3}: Knight,
		{2, 0}: Knight,
	})
	gs := stateWith(b, NewStandardRules(), KnightTurn)

	require.True(t, gs.ApplyMove(Position{2, 0}, Position{4, 1}))

	require.True(t, gs.IsGameOver())
	require.Equal(t, KnightWinner, gs.Winner(), "Three surrounding knights should win")
}

func TestSiegeVictory(t *testing.T) {
	b := boardWith(map[Position]Cell{
		{2, 2}: King,
		{4, 0}: Knight,
	})
	gs := stateWith(b, NewStandardRules(), KnightTurn)
	gs.TurnCount = 29

	require.True(t, gs.ApplyMove(Position{4, 0}, Position{3, 2}))

	require.Equal(t, 30, gs.TurnCount)
	require.True(t, gs.IsGameOver())
	require.Equal(t, KnightWinner, gs.Winner(), "Reaching the turn limit should win by siege")
}

func TestKingTrappedVictory(t *testing.T) {
	// Corner king: (0,1), (1,0) and (1,1) are its only steps. Knights at
	// (2,2) and (3,1) attack (0,1), (1,0) and (1,1) between them, so the
	// king has nowhere to go once the knights complete the cage.
	b := boardWith(map[Position]Cell{
		{0, 0}: King,
		{2, 2}: Knight,
		{3, 1}: Knight,
		{4, 4}: Knight,
	})
	gs := stateWith(b, NewStandardRules(), KnightTurn)

	require.True(t, gs.ApplyMove(Position{4, 4}, Position{3, 2}))

	require.True(t, gs.IsGameOver())
	require.Equal(t, KnightWinner, gs.Winner(), "Immobilized king loses")
}

func TestKingCountInvariant(t *testing.T) {
	gs := NewGameState(NewStandardRules())
	script := []Move{
		{From: Position{2, 2}, To: Position{1, 1}},
		{From: Position{0, 0}, To: Position{2, 1}},
		{From: Position{1, 1}, To: Position{0, 1}},
		{From: Position{4, 4}, To: Position{3, 2}},
	}

	for _, m := range script {
		require.True(t, gs.ApplyMove(m.From, m.To), "scripted move %v should be legal", m)
		require.Len(t, gs.Board.Positions(King), 1,
			"Exactly one king must exist after every move")
	}
	for gs.HistoryLen() > 0 {
		require.True(t, gs.Undo())
		require.Len(t, gs.Board.Positions(King), 1,
			"Exactly one king must exist after every undo")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	gs := NewGameState(NewStandardRules())
	require.True(t, gs.ApplyMove(Position{2, 2}, Position{1, 1}))

	cp := gs.Copy()
	require.Equal(t, gs.Hash(), cp.Hash())

	require.True(t, cp.ApplyMove(Position{0, 0}, Position{1, 2}))

	require.NotEqual(t, gs.Hash(), cp.Hash(), "Mutating the copy must not affect the original")
	require.Equal(t, 1, gs.HistoryLen())
	require.Equal(t, 2, cp.HistoryLen())
}

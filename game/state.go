package game

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/rs/zerolog/log"
)

// GameState is the dynamic state of a game: the board plus every scalar the
// rules track. It is created fresh per game session and mutated only through
// ApplyMove, Undo, and the ability activations.
type GameState struct {
	Board           Board
	Rules           Rules
	Turn            int // KingTurn or KnightTurn
	TurnCount       int // increments once per full King+Knight round
	KingPos         Position
	KingKills       int
	ChargeCooldown  int
	EscapeAvailable bool
	LastEvent       Event

	gameOver  bool
	winner    int
	selected  *Position
	options   []Position
	history   []MoveRecord
	onCapture CaptureHook
}

// NewGameState initializes a fresh game under the given rules.
func NewGameState(rules Rules, opts ...Option) *GameState {
	board := rules.StartingBoard()
	kingPos, ok := board.FindKing()
	if !ok {
		log.Error().Msg("starting board has no king")
	}
	gs := &GameState{
		Board:           board,
		Rules:           rules,
		Turn:            KingTurn,
		TurnCount:       1,
		KingPos:         kingPos,
		EscapeAvailable: true,
	}
	for _, opt := range opts {
		opt(gs)
	}
	return gs
}

// Copy returns a deep copy sharing only the immutable Rules. The board is a
// value type so assignment already copies it; the history stack and the
// selection cache are cloned explicitly.
func (gs *GameState) Copy() *GameState {
	historyCopy := make([]MoveRecord, len(gs.history))
	copy(historyCopy, gs.history)

	var selectedCopy *Position
	if gs.selected != nil {
		s := *gs.selected
		selectedCopy = &s
	}
	optionsCopy := append([]Position(nil), gs.options...)

	return &GameState{
		Board:           gs.Board,
		Rules:           gs.Rules,
		Turn:            gs.Turn,
		TurnCount:       gs.TurnCount,
		KingPos:         gs.KingPos,
		KingKills:       gs.KingKills,
		ChargeCooldown:  gs.ChargeCooldown,
		EscapeAvailable: gs.EscapeAvailable,
		LastEvent:       gs.LastEvent,
		gameOver:        gs.gameOver,
		winner:          gs.winner,
		selected:        selectedCopy,
		options:         optionsCopy,
		history:         historyCopy,
		onCapture:       gs.onCapture,
	}
}

// LegalMoves returns the legal destinations for the piece at p. Out-of-bounds
// or empty squares yield an empty set rather than an error.
func (gs *GameState) LegalMoves(p Position) []Position {
	return MovesFrom(&gs.Board, p)
}

// Select picks the piece at p for the side to move and returns its legal
// destinations. Selecting the wrong side's piece, an empty square, or any
// square after the game has ended clears the selection and fails.
func (gs *GameState) Select(p Position) ([]Position, bool) {
	if gs.gameOver || !gs.Board.InBounds(p) {
		gs.clearSelection()
		return nil, false
	}

	piece := gs.Board.At(p)
	ownPiece := (gs.Turn == KingTurn && piece == King) ||
		(gs.Turn == KnightTurn && piece == Knight)
	if !ownPiece {
		gs.clearSelection()
		return nil, false
	}

	gs.selected = &p
	gs.options = MovesFrom(&gs.Board, p)
	return gs.options, true
}

// moveOptions resolves the destinations ApplyMove validates against: the
// cached selection set when from is the selected piece (this is how ability
// moves bypass single-step King legality), otherwise the normal move set.
func (gs *GameState) moveOptions(from Position) []Position {
	if gs.selected != nil && *gs.selected == from {
		return gs.options
	}
	return MovesFrom(&gs.Board, from)
}

// ApplyMove moves the piece at from to to. It fails without any state change
// when the game is over, the square does not hold the moving side's piece, or
// to is not in the piece's legal-move set; a failed attempt clears the
// current selection.
func (gs *GameState) ApplyMove(from, to Position) bool {
	if gs.gameOver {
		log.Warn().Msg("move rejected: game is over")
		return false
	}
	if !gs.Board.InBounds(from) || !gs.Board.InBounds(to) {
		log.Warn().Msgf("move rejected: out of bounds from=%v to=%v", from, to)
		gs.clearSelection()
		return false
	}

	piece := gs.Board.At(from)
	ownPiece := (gs.Turn == KingTurn && piece == King) ||
		(gs.Turn == KnightTurn && piece == Knight)
	if !ownPiece {
		log.Warn().Msgf("move rejected: no piece of player %d at %v", gs.Turn, from)
		gs.clearSelection()
		return false
	}
	if !containsPosition(gs.moveOptions(from), to) {
		log.Warn().Msgf("move rejected: illegal destination %v for piece at %v", to, from)
		gs.clearSelection()
		return false
	}

	gs.pushRecord(from, to)
	gs.LastEvent = EventNone

	captured := gs.Board.At(to)
	if piece == King && captured == Knight {
		gs.KingKills++
		gs.LastEvent = EventKnightCaptured
		log.Info().Msgf("king captured knight at %v, total kills %d", to, gs.KingKills)
		if gs.onCapture != nil {
			gs.onCapture(to)
		}
	}

	gs.Board.Set(from, Empty)
	gs.Board.Set(to, piece)
	if piece == King {
		gs.KingPos = to
	}
	if gs.Turn == KingTurn && gs.ChargeCooldown > 0 {
		gs.ChargeCooldown--
	}

	gs.switchTurn()
	gs.checkGameOver()
	gs.clearSelection()
	return true
}

// switchTurn alternates the side to move; the round counter advances when
// the Knight side's move just concluded.
func (gs *GameState) switchTurn() {
	if gs.Turn == KnightTurn {
		gs.TurnCount++
	}
	gs.Turn = 3 - gs.Turn
}

// checkGameOver evaluates the terminal conditions in fixed priority order;
// the first condition that holds decides the winner.
func (gs *GameState) checkGameOver() {
	knights := gs.Board.Positions(Knight)

	// 1. King occupies a safe zone.
	if containsPosition(gs.Rules.SafeZones(), gs.KingPos) {
		gs.endGame(KingWinner, "king reached a safe zone")
		return
	}
	// 2. King captured enough Knights.
	if gs.KingKills >= gs.Rules.KillTarget() {
		gs.endGame(KingWinner, "king reached the capture target")
		return
	}
	// 3. No Knights remain.
	if len(knights) == 0 {
		gs.endGame(KingWinner, "all knights captured")
		return
	}
	// 4. King is surrounded at knight-move offsets.
	surrounding := 0
	for _, off := range knightOffsets {
		n := Position{gs.KingPos.Row + off.Row, gs.KingPos.Col + off.Col}
		if gs.Board.InBounds(n) && gs.Board.At(n) == Knight {
			surrounding++
		}
	}
	if surrounding >= gs.Rules.SurroundThreshold() {
		gs.endGame(KnightWinner, "king is surrounded")
		return
	}
	// 5. King has no legal moves.
	if len(MovesFrom(&gs.Board, gs.KingPos)) == 0 {
		gs.endGame(KnightWinner, "king has no legal moves")
		return
	}
	// 6. Siege: the turn limit was reached.
	if gs.TurnCount >= gs.Rules.MaxTurns() {
		gs.endGame(KnightWinner, "knights win by siege")
		return
	}

	gs.gameOver = false
	gs.winner = NoWinner
}

func (gs *GameState) endGame(winner int, reason string) {
	gs.gameOver = true
	gs.winner = winner
	log.Info().Msgf("game over: %s (winner %d)", reason, winner)
}

func (gs *GameState) clearSelection() {
	gs.selected = nil
	gs.options = nil
}

func (gs *GameState) IsGameOver() bool { return gs.gameOver }

func (gs *GameState) Winner() int { return gs.winner }

// Hash returns an FNV-64a digest of the board and every scalar that
// distinguishes game states. Used by drivers to dedup update feeds.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	binary.Write(hasher, binary.LittleEndian, int64(gs.TurnCount))
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			binary.Write(hasher, binary.LittleEndian, int64(gs.Board[r][c]))
		}
	}
	binary.Write(hasher, binary.LittleEndian, int64(gs.KingKills))
	binary.Write(hasher, binary.LittleEndian, int64(gs.ChargeCooldown))
	escape := int64(0)
	if gs.EscapeAvailable {
		escape = 1
	}
	binary.Write(hasher, binary.LittleEndian, escape)

	return StateHash(hasher.Sum64())
}

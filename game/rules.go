package game

// Rules carries the tunable game constants. GameState consults it for
// terminal conditions and ability cooldowns, so variants only need a new
// Rules implementation.
type Rules interface {
	// KillTarget is the number of Knight captures that wins for the King.
	KillTarget() int
	// SurroundThreshold is the number of Knights at knight-move offsets
	// from the King that wins for the Knights.
	SurroundThreshold() int
	// MaxTurns is the full-round count at which the Knights win by siege.
	MaxTurns() int
	// ChargeCooldownTurns is the cooldown set when Royal Charge activates.
	ChargeCooldownTurns() int
	// SafeZones is the fixed set of King-escape squares. It must not
	// change for the lifetime of a game.
	SafeZones() []Position
	// StartingBoard is the initial piece layout.
	StartingBoard() Board
}

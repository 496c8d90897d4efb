package game

// Turn identifiers. The King side always moves first.
const (
	KingTurn   = 1
	KnightTurn = 2
)

// Winner values reported by GameState.Winner.
const (
	NoWinner     = 0
	KingWinner   = 1
	KnightWinner = 2
)

type StateHash uint64

// Move is a single piece displacement from one square to another.
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Evaluate scores a position from the Knight side's perspective; higher is
// better for the Knights. Implementations must not mutate the state.
type Evaluate func(gs *GameState) float64

package searcher

import "kingsiege/game"

// Agent selects a move for the side to play in the given state. The third
// return is false when the side has no legal move; for the Knight side that
// signals a stalemate to the caller, not an error.
type Agent interface {
	FindMove(gs *game.GameState) (game.Move, SearchMetric, bool)
}

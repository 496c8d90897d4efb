package searcher

import (
	"time"

	"kingsiege/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move for whichever side is to move.
// It serves as the baseline opponent in experiments.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) FindMove(gs *game.GameState) (game.Move, SearchMetric, bool) {
	moves := sideMoves(gs)
	if len(moves) == 0 {
		return game.Move{}, SearchMetric{}, false
	}
	return moves[a.rng.Intn(len(moves))], SearchMetric{}, true
}

// sideMoves enumerates every legal move for the side to play.
func sideMoves(gs *game.GameState) []game.Move {
	piece := game.King
	if gs.Turn == game.KnightTurn {
		piece = game.Knight
	}

	var moves []game.Move
	for _, from := range gs.Board.Positions(piece) {
		for _, to := range game.MovesFrom(&gs.Board, from) {
			moves = append(moves, game.Move{From: from, To: to})
		}
	}
	return moves
}

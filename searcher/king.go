package searcher

import (
	"time"

	"kingsiege/game"
	"kingsiege/utils"

	"golang.org/x/exp/rand"
)

// KingGreedy is a simple King-side heuristic used to drive headless
// self-play games: it takes a safe zone when reachable, otherwise prefers
// capturing a Knight, otherwise keeps its distance from the pack.
type KingGreedy struct {
	rng *rand.Rand
}

func NewKingGreedy(seed uint64) *KingGreedy {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &KingGreedy{rng: rand.New(rand.NewSource(seed))}
}

func (a *KingGreedy) FindMove(gs *game.GameState) (game.Move, SearchMetric, bool) {
	options := game.MovesFrom(&gs.Board, gs.KingPos)
	if len(options) == 0 {
		return game.Move{}, SearchMetric{}, false
	}

	knights := gs.Board.Positions(game.Knight)
	zones := gs.Rules.SafeZones()

	bestScore := 0.0
	var candidates []game.Move
	for i, to := range options {
		score := a.score(gs, to, knights, zones)
		move := game.Move{From: gs.KingPos, To: to}
		if i == 0 || score > bestScore {
			bestScore = score
			candidates = []game.Move{move}
		} else if score == bestScore {
			candidates = append(candidates, move)
		}
	}

	chosen := candidates[a.rng.Intn(len(candidates))]
	return chosen, SearchMetric{Candidates: len(candidates), BestScore: bestScore}, true
}

func (a *KingGreedy) score(gs *game.GameState, to game.Position, knights, zones []game.Position) float64 {
	score := 0.0
	if utils.FindIndex(zones, to) >= 0 {
		score += 1000
	}
	if gs.Board.At(to) == game.Knight {
		score += 100
	}
	// Stay away from the nearest Knight; walk toward the nearest zone.
	if len(knights) > 0 {
		nearest := game.Manhattan(to, knights[0])
		for _, k := range knights[1:] {
			if d := game.Manhattan(to, k); d < nearest {
				nearest = d
			}
		}
		score += float64(nearest)
	}
	if len(zones) > 0 {
		nearest := game.Manhattan(to, zones[0])
		for _, z := range zones[1:] {
			if d := game.Manhattan(to, z); d < nearest {
				nearest = d
			}
		}
		score -= float64(nearest) * 2
	}
	return score
}

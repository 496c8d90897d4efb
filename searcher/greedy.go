package searcher

import (
	"time"

	"kingsiege/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Greedy is the Knight-side opponent: a depth-1 search that scores every
// (knight, destination) pair on a scratch board and picks uniformly among
// the highest-scoring candidates. It never anticipates the King's reply.
type Greedy struct {
	evaluate game.Evaluate
	rng      *rand.Rand
	metrics  Collector
}

type Option func(g *Greedy)

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(g *Greedy) {
		if evaluate != nil {
			g.evaluate = evaluate
		}
	}
}

// WithSeed fixes the tie-break source for reproducible move selection.
func WithSeed(seed uint64) Option {
	return func(g *Greedy) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(g *Greedy) {
		g.metrics = NewCollector()
	}
}

func NewGreedy(options ...Option) *Greedy {
	g := &Greedy{ // Default values
		evaluate: game.EvaluateKnights,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:  NewDummyCollector(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// FindMove enumerates every legal Knight move, scores the hypothetical
// position each one produces, and selects among the exact-maximum ties at
// random. Returns false when no Knight has a legal move.
func (g *Greedy) FindMove(gs *game.GameState) (game.Move, SearchMetric, bool) {
	g.metrics.Start()

	// Scratch state for hypothetical scoring: the board is a value copy,
	// so mutations here never touch the live state. Knight moves do not
	// displace the King, so the cached king position carries over.
	scratch := &game.GameState{
		Board:     gs.Board,
		Rules:     gs.Rules,
		KingPos:   gs.KingPos,
		TurnCount: gs.TurnCount,
	}

	bestScore := 0.0
	var candidates []game.Move
	for _, from := range gs.Board.Positions(game.Knight) {
		for _, to := range game.MovesFrom(&scratch.Board, from) {
			scratch.Board.Set(from, game.Empty)
			scratch.Board.Set(to, game.Knight)
			score := g.evaluate(scratch)
			scratch.Board.Set(to, game.Empty)
			scratch.Board.Set(from, game.Knight)
			g.metrics.AddEvaluation()

			move := game.Move{From: from, To: to}
			if len(candidates) == 0 || score > bestScore {
				bestScore = score
				candidates = []game.Move{move}
			} else if score == bestScore {
				candidates = append(candidates, move)
			}
		}
	}

	if len(candidates) == 0 {
		log.Warn().Msg("knights have no legal moves")
		return game.Move{}, g.metrics.Complete(0, 0), false
	}

	chosen := candidates[g.rng.Intn(len(candidates))]
	log.Debug().Msgf("greedy chose %v from %d candidates with score %.1f",
		chosen, len(candidates), bestScore)
	return chosen, g.metrics.Complete(len(candidates), bestScore), true
}

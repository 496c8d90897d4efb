package engine

import (
	"fmt"
	"time"

	"kingsiege/game"
	"kingsiege/searcher"

	"github.com/rs/zerolog/log"
)

// Update is one entry in the engine's observable feed: the move that was
// applied plus everything a presentation layer needs without reaching into
// the state.
type Update struct {
	Move   game.Move
	Event  game.Event
	Hash   game.StateHash
	Winner int
	Over   bool
}

// MoveMetric ties a search metric to its position in the game.
type MoveMetric struct {
	Step   int
	Player int
	searcher.SearchMetric
}

// Engine drives a single game. All mutation is synchronous call/return on
// one goroutine: a move search and a human move must never be applied to the
// same state concurrently, and the engine itself never interleaves them.
type Engine struct {
	State  *game.GameState
	agents map[int]searcher.Agent

	// Per-side wall-clock totals. Tracked for presentation, never enforced.
	KingTime   time.Duration
	KnightTime time.Duration

	updates chan Update
	closed  bool
}

// NewLocalEngine builds an engine for the given rules. Either agent may be
// nil, in which case that side's moves must come through Play (the
// human-driver path).
func NewLocalEngine(rules game.Rules, kingAgent, knightAgent searcher.Agent, opts ...game.Option) *Engine {
	return &Engine{
		State: game.NewGameState(rules, opts...),
		agents: map[int]searcher.Agent{
			game.KingTurn:   kingAgent,
			game.KnightTurn: knightAgent,
		},
		updates: make(chan Update, 1),
	}
}

// Updates exposes the engine's feed. The channel is closed after the final
// move of a finished game.
func (e *Engine) Updates() <-chan Update {
	return e.updates
}

// Play validates and applies an externally chosen move.
func (e *Engine) Play(m game.Move) error {
	if e.State.IsGameOver() {
		return fmt.Errorf("game is over - no moves allowed")
	}
	if !e.State.ApplyMove(m.From, m.To) {
		return fmt.Errorf("illegal move from %v to %v", m.From, m.To)
	}
	e.publish(m)
	return nil
}

// Run plays the game to completion using the configured agents and returns
// the winner with per-move search metrics.
func (e *Engine) Run() (int, []MoveMetric) {
	log.Info().Msgf("player %d is starting", e.State.Turn)

	var gameMetrics []MoveMetric
	step := 1
	for !e.State.IsGameOver() {
		player := e.State.Turn
		agent := e.agents[player]
		if agent == nil {
			log.Error().Msgf("no agent configured for player %d", player)
			break
		}

		start := time.Now()
		move, metric, ok := agent.FindMove(e.State)
		e.addTime(player, time.Since(start))
		if !ok {
			// A stalled side is not a terminal condition by itself;
			// stop driving and let the caller decide.
			log.Warn().Msgf("player %d has no move to play", player)
			break
		}

		if err := e.Play(move); err != nil {
			log.Error().Err(err).Msgf("agent for player %d produced a bad move", player)
			break
		}
		gameMetrics = append(gameMetrics, MoveMetric{
			Step:         step,
			Player:       player,
			SearchMetric: metric,
		})
		step++
	}

	return e.State.Winner(), gameMetrics
}

func (e *Engine) addTime(player int, d time.Duration) {
	if player == game.KingTurn {
		e.KingTime += d
	} else {
		e.KnightTime += d
	}
}

// publish pushes an update without blocking; a slow consumer only sees the
// latest entry.
func (e *Engine) publish(m game.Move) {
	if e.closed {
		return
	}
	u := Update{
		Move:   m,
		Event:  e.State.LastEvent,
		Hash:   e.State.Hash(),
		Winner: e.State.Winner(),
		Over:   e.State.IsGameOver(),
	}
	select {
	case e.updates <- u:
	default:
		select {
		case <-e.updates:
		default:
		}
		e.updates <- u
	}
	if u.Over {
		close(e.updates)
		e.closed = true
	}
}

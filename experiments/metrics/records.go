package metrics

import (
	"time"

	"kingsiege/engine"
)

// AgentConfig identifies an agent variant under test.
type AgentConfig struct {
	ID   int
	Kind string // "greedy", "random", "king-greedy"
	Seed uint64
}

type GameRecord struct {
	ID        int
	Agent1    int // AgentConfig.ID, King side
	Agent2    int // AgentConfig.ID, Knight side
	Winner    int
	Turns     int
	KingKills int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type MoveRecord struct {
	Game int // GameRecord.ID
	engine.MoveMetric
}

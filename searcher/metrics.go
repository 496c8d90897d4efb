package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes a single move search.
type SearchMetric struct {
	Evaluations int
	Candidates  int
	BestScore   float64
	Duration    time.Duration
}

type Collector interface {
	Start()
	AddEvaluation()
	Complete(candidates int, bestScore float64) SearchMetric
}

type collector struct {
	startTime   time.Time
	evaluations atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.evaluations.Store(0)
}

func (c *collector) AddEvaluation() {
	c.evaluations.Add(1)
}

func (c *collector) Complete(candidates int, bestScore float64) SearchMetric {
	return SearchMetric{
		Evaluations: int(c.evaluations.Load()),
		Candidates:  candidates,
		BestScore:   bestScore,
		Duration:    time.Since(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start()          {}
func (c *dummyCollector) AddEvaluation()  {}
func (c *dummyCollector) Complete(candidates int, bestScore float64) SearchMetric {
	return SearchMetric{}
}

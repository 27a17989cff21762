package metrics

import (
	"sync/atomic"
	"time"
)

// BatchMetric captures how one batch of matches ran end to end.
type BatchMetric struct {
	Seed       uint64
	Matches    int
	Ticks      int
	StartTime  time.Time
	Duration   time.Duration
	PlayerWins int
	EnemyWins  int
	Draws      int
}

type Collector interface {
	Start(seed uint64, matches int)
	AddTick()
	Complete(playerWins, enemyWins, draws int) BatchMetric
}

type collector struct {
	seed      uint64
	matches   int
	startTime time.Time
	ticks     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(seed uint64, matches int) {
	c.startTime = time.Now()
	c.seed = seed
	c.matches = matches
}

func (c *collector) AddTick() {
	c.ticks.Add(1)
}

func (c *collector) Complete(playerWins, enemyWins, draws int) BatchMetric {
	return BatchMetric{
		Seed:       c.seed,
		Matches:    c.matches,
		Ticks:      int(c.ticks.Load()),
		StartTime:  c.startTime,
		Duration:   time.Since(c.startTime),
		PlayerWins: playerWins,
		EnemyWins:  enemyWins,
		Draws:      draws,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for callers
// that run batches without gathering metrics.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(seed uint64, matches int)                       {}
func (c *dummyCollector) AddTick()                                             {}
func (c *dummyCollector) Complete(playerWins, enemyWins, draws int) BatchMetric { return BatchMetric{} }

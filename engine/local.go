package engine

import (
	"cardduel/experiments/metrics"
	"cardduel/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Local advances a batch of independent matches one phase step per tick.
// Matches share no state, so ascending id order is as good as any.
type Local struct {
	Matches []*game.Match

	ticks     int
	collector metrics.Collector
}

type Option func(*Local)

func WithCollector(c metrics.Collector) Option {
	return func(l *Local) {
		if c != nil {
			l.collector = c
		}
	}
}

// NewLocal creates numMatches fresh matches. Every per-side generator is
// seeded from the single process-level seed, so a batch is reproducible
// bit-for-bit given the same seed.
func NewLocal(numMatches int, seed uint64, options ...Option) *Local {
	if numMatches < 1 {
		panic("need at least one match")
	}

	seeder := rand.New(rand.NewSource(seed))
	matches := make([]*game.Match, numMatches)
	for id := range matches {
		matches[id] = game.NewMatch(id, seeder)
	}

	l := &Local{
		Matches:   matches,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Tick advances every match by one phase step. Halted matches are no-ops.
func (l *Local) Tick() {
	for _, m := range l.Matches {
		m.Advance()
	}
	l.ticks++
	l.collector.AddTick()
}

// Ticks returns how many ticks have run so far.
func (l *Local) Ticks() int {
	return l.ticks
}

// Halted reports whether every match has reached its terminal phase.
func (l *Local) Halted() bool {
	for _, m := range l.Matches {
		if !m.Halted() {
			return false
		}
	}
	return true
}

// Tally counts terminal sides across the batch. It reports false until every
// match has halted; partial counts would be meaningless.
func (l *Local) Tally() (Tally, bool) {
	if !l.Halted() {
		return Tally{}, false
	}
	var t Tally
	for _, m := range l.Matches {
		switch m.Side {
		case game.Player:
			t.PlayerWins++
		case game.Enemy:
			t.EnemyWins++
		case game.Draw:
			t.Draws++
		}
	}
	return t, true
}

// Run ticks until every match halts, then logs and returns the tally once.
func (l *Local) Run() Tally {
	for !l.Halted() {
		if l.ticks >= MaxTicks {
			panic("matches failed to halt within the tick bound")
		}
		l.Tick()
	}

	tally, _ := l.Tally()
	log.Info().Msgf("results: %d player wins, %d enemy wins, %d draws", tally.PlayerWins, tally.EnemyWins, tally.Draws)
	return tally
}

package metrics

import (
	"testing"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(9, 100)
	for i := 0; i < 3; i++ {
		c.AddTick()
	}

	metric := c.Complete(60, 35, 5)

	if metric.Seed != 9 {
		t.Errorf("expected seed 9, got %d", metric.Seed)
	}
	if metric.Matches != 100 {
		t.Errorf("expected 100 matches, got %d", metric.Matches)
	}
	if metric.Ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", metric.Ticks)
	}
	if metric.PlayerWins != 60 || metric.EnemyWins != 35 || metric.Draws != 5 {
		t.Errorf("tally not carried through: %+v", metric)
	}
	if metric.Duration < 0 {
		t.Errorf("expected non-negative duration, got %v", metric.Duration)
	}
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(9, 100)
	c.AddTick()

	if metric := c.Complete(1, 2, 3); metric != (BatchMetric{}) {
		t.Errorf("dummy collector must record nothing, got %+v", metric)
	}
}

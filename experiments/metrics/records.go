package metrics

import "cardduel/game"

// BatchConfig describes one configuration in an experiment sweep.
type BatchConfig struct {
	ID      int
	Seed    uint64
	Matches int
}

// MatchMetric is the terminal state of a single match.
type MatchMetric struct {
	ID           int
	Winner       game.Side
	TurnCount    int
	PlayerHealth int
	EnemyHealth  int
}

type BatchRecord struct {
	ID     int
	Config int // BatchConfig.ID
	BatchMetric
}

type MatchRecord struct {
	Batch int // BatchRecord.ID
	MatchMetric
}

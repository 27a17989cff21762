package engine

import "cardduel/meta"

// MaxTicks bounds a batch run. Every match halts within MAX_TURNS turns of
// two phase steps each, so exceeding this is an internal defect.
const MaxTicks = 2*meta.MAX_TURNS + 4

// Tally aggregates terminal outcomes across a batch of matches.
type Tally struct {
	PlayerWins int
	EnemyWins  int
	Draws      int
}

// Total returns the number of matches accounted for.
func (t Tally) Total() int {
	return t.PlayerWins + t.EnemyWins + t.Draws
}

// Cell returns the (column, row) a presentation layer would place match id
// at, on a grid SQRT_NUMBER_OF_GAMES matches wide.
func Cell(id int) (int, int) {
	return id % meta.SQRT_NUMBER_OF_GAMES, id / meta.SQRT_NUMBER_OF_GAMES
}

package game

// Phase is the current step within a match's turn cycle.
type Phase int

const (
	PlayPhase   Phase = iota // active side draws and places a card
	AttackPhase              // active side's cards resolve combat
	HaltPhase                // terminal, the match no longer changes
)

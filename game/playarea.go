package game

import (
	"cardduel/meta"

	"golang.org/x/exp/rand"
)

// PlayArea holds one side's in-play cards, one per slot. Three slots are
// allocated but only the first ACTIVE_SLOTS are ever targeted by slot
// selection or combat; slot 2 stays empty for the lifetime of a match.
type PlayArea struct {
	Cards [meta.PLAY_AREA_SLOTS]*Card
}

// RandomOpenSlot picks uniformly among the open active slots, or -1 if every
// active slot is occupied.
func (p *PlayArea) RandomOpenSlot(rng *rand.Rand) int {
	open := make([]int, 0, meta.ACTIVE_SLOTS)
	for slot := 0; slot < meta.ACTIVE_SLOTS; slot++ {
		if p.Cards[slot] == nil {
			open = append(open, slot)
		}
	}
	if len(open) == 0 {
		return -1
	}
	return open[rng.Intn(len(open))]
}

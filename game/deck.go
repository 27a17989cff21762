package game

import (
	"cardduel/meta"

	"golang.org/x/exp/rand"
)

// Deck is one side's remaining drawable cards plus that side's life total.
// Cards are consumed from the tail; the deck is never refilled.
type Deck struct {
	Cards  []Card
	Health int
}

// StarterDeck returns the fixed four-card deck every side begins with.
func StarterDeck() Deck {
	return Deck{
		Cards: []Card{
			{Damage: 3, Health: 1},
			{Damage: 1, Health: 1},
			{Damage: 0, Health: 5},
			{Damage: 2, Health: 1},
		},
		Health: meta.STARTING_HEALTH,
	}
}

// Draw reshuffles the remaining cards and pops one from the tail. The whole
// remainder is reshuffled on every draw, re-randomizing draw order each turn
// rather than only at deck creation. Returns false if the deck is empty.
func (d *Deck) Draw(rng *rand.Rand) (Card, bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
	card := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return card, true
}

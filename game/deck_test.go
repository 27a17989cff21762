package game

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestStarterDeck(t *testing.T) {
	d := StarterDeck()

	if d.Health != 5 {
		t.Errorf("expected starting health 5, got %d", d.Health)
	}
	if len(d.Cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(d.Cards))
	}

	want := map[Card]int{
		{Damage: 3, Health: 1}: 1,
		{Damage: 1, Health: 1}: 1,
		{Damage: 0, Health: 5}: 1,
		{Damage: 2, Health: 1}: 1,
	}
	if got := countCards(d.Cards); !equalCounts(got, want) {
		t.Errorf("starter deck contents not as expected: got %+v", got)
	}
}

func TestDrawPopsExactlyOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := StarterDeck()
	before := countCards(d.Cards)

	card, ok := d.Draw(rng)
	if !ok {
		t.Fatal("expected a card from a full deck")
	}
	if len(d.Cards) != 3 {
		t.Errorf("expected 3 cards remaining, got %d", len(d.Cards))
	}

	// Drawing only reorders: remaining cards plus the drawn one must be the
	// original multiset.
	after := countCards(d.Cards)
	after[card]++
	if !equalCounts(after, before) {
		t.Errorf("draw changed deck contents: got %+v, want %+v", after, before)
	}
}

func TestDrawFromEmptyDeck(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := Deck{Health: 5}

	if _, ok := d.Draw(rng); ok {
		t.Error("expected no card from an empty deck")
	}
	if d.Health != 5 {
		t.Errorf("draw must not touch health, got %d", d.Health)
	}
}

func countCards(cards []Card) map[Card]int {
	counts := make(map[Card]int)
	for _, c := range cards {
		counts[c]++
	}
	return counts
}

func equalCounts(a, b map[Card]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

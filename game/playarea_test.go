package game

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestRandomOpenSlotIgnoresThirdSlot(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	area := PlayArea{}
	area.Cards[0] = &Card{Damage: 1, Health: 1}
	area.Cards[1] = &Card{Damage: 1, Health: 1}

	// Slot 2 is empty but never a candidate.
	if slot := area.RandomOpenSlot(rng); slot != -1 {
		t.Errorf("expected -1 with both active slots full, got %d", slot)
	}
}

func TestRandomOpenSlotSingleCandidate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	area := PlayArea{}
	area.Cards[0] = &Card{Damage: 1, Health: 1}

	for i := 0; i < 10; i++ {
		if slot := area.RandomOpenSlot(rng); slot != 1 {
			t.Fatalf("expected slot 1, got %d", slot)
		}
	}
}

func TestRandomOpenSlotEmptyArea(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	area := PlayArea{}

	for i := 0; i < 10; i++ {
		slot := area.RandomOpenSlot(rng)
		if slot != 0 && slot != 1 {
			t.Fatalf("expected slot 0 or 1, got %d", slot)
		}
	}
}

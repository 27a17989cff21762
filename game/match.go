package game

import (
	"cardduel/meta"

	"golang.org/x/exp/rand"
)

// SideState bundles everything one side of a match owns: its deck, its play
// area, and its own random-number generator. Nothing here is ever shared
// across matches.
type SideState struct {
	Deck Deck
	Area PlayArea
	Rng  *rand.Rand
}

// Match is one independent contest between two sides. It is mutated every
// phase step and never destroyed; once Turn reaches HaltPhase it simply
// stops changing.
type Match struct {
	ID        int
	Player    SideState
	Enemy     SideState
	Turn      Phase
	Side      Side // whose turn it is; the winner (or Draw) once halted
	TurnCount int
}

// NewMatch creates a fresh match with starter decks. Each side's generator
// is seeded from seeder so that a single process-level seed reproduces the
// whole batch bit-for-bit.
func NewMatch(id int, seeder *rand.Rand) *Match {
	return &Match{
		ID: id,
		Player: SideState{
			Deck: StarterDeck(),
			Rng:  rand.New(rand.NewSource(seeder.Uint64())),
		},
		Enemy: SideState{
			Deck: StarterDeck(),
			Rng:  rand.New(rand.NewSource(seeder.Uint64())),
		},
		Turn: PlayPhase,
		Side: Player,
	}
}

func (m *Match) state(s Side) *SideState {
	switch s {
	case Player:
		return &m.Player
	case Enemy:
		return &m.Enemy
	default:
		panic("match has no state for terminal side Draw")
	}
}

// Halted reports whether the match has reached its terminal phase.
func (m *Match) Halted() bool {
	return m.Turn == HaltPhase
}

// Advance runs exactly one phase step of the match state machine. A halted
// match is left untouched, so calling Advance past the end is a no-op.
func (m *Match) Advance() {
	switch m.Turn {
	case PlayPhase:
		m.stepPlay()
	case AttackPhase:
		m.stepAttack()
	case HaltPhase:
		// Terminal.
	default:
		panic("unknown game phase")
	}
}

// stepPlay draws one card for the active side and places it in a random open
// slot. A draw with no open slot discards the card; an empty deck plays
// nothing. Either way the match moves on to the attack step.
func (m *Match) stepPlay() {
	active := m.state(m.Side)
	if card, ok := active.Deck.Draw(active.Rng); ok {
		if slot := active.Area.RandomOpenSlot(active.Rng); slot >= 0 {
			active.Area.Cards[slot] = &card
		}
	}
	m.Turn = AttackPhase
}

// stepAttack resolves combat slot by slot, slot 0 fully before slot 1. A
// blocked attack damages the blocker, destroying it only when its health
// goes negative (0 leaves it alive). An unblocked attack hits the defender's
// deck directly; if that empties the defender's life total the match halts
// immediately with the attacker as winner and no further slots resolve.
func (m *Match) stepAttack() {
	attacker := m.state(m.Side)
	defender := m.state(m.Side.Other())

	for slot := 0; slot < meta.ACTIVE_SLOTS; slot++ {
		card := attacker.Area.Cards[slot]
		if card == nil {
			continue
		}
		if blocker := defender.Area.Cards[slot]; blocker != nil {
			blocker.Health -= card.Damage
			if blocker.Health < 0 {
				defender.Area.Cards[slot] = nil
			}
			continue
		}
		defender.Deck.Health -= card.Damage
		if defender.Deck.Health <= 0 {
			// m.Side already names the attacker, which is the winner.
			m.Turn = HaltPhase
			return
		}
	}

	m.TurnCount++
	if m.TurnCount > meta.MAX_TURNS {
		m.Turn = HaltPhase
		m.Side = Draw
		return
	}
	m.Turn = PlayPhase
	m.Side = m.Side.Other()
}

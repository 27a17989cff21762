package game

// Side identifies which role owns a deck and play area within a match. Draw
// only ever appears as a terminal outcome tag, never as an active side.
type Side int

const (
	Player Side = iota // 0
	Enemy              // 1
	Draw               // 2
)

func (s Side) String() string {
	switch s {
	case Player:
		return "Player"
	case Enemy:
		return "Enemy"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// Other returns the opposing side.
func (s Side) Other() Side {
	switch s {
	case Player:
		return Enemy
	case Enemy:
		return Player
	default:
		panic("no opponent for terminal side Draw")
	}
}

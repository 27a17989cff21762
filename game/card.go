package game

// Card is a single creature card: the Damage it deals each attack step and
// the Health it can absorb before being destroyed.
type Card struct {
	Damage int
	Health int
}

// meta/meta.go
package meta

// SQRT_NUMBER_OF_GAMES is the width of the presentation grid, in matches.
const SQRT_NUMBER_OF_GAMES = 10

// NUMBER_OF_GAMES is how many matches run concurrently in one batch.
const NUMBER_OF_GAMES = SQRT_NUMBER_OF_GAMES * SQRT_NUMBER_OF_GAMES

// MAX_TURNS is the turn count past which a match is forced to a draw.
const MAX_TURNS = 500

// PLAY_AREA_SLOTS is the allocated capacity of a play area.
const PLAY_AREA_SLOTS = 3

// ACTIVE_SLOTS is how many leading slots play and combat actually target.
// Slot 2 is allocated but never used.
const ACTIVE_SLOTS = 2

// STARTING_HEALTH is each side's starting life total.
const STARTING_HEALTH = 5

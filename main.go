package main

import (
	"flag"
	"fmt"

	"cardduel/engine"
	"cardduel/experiments"
	"cardduel/meta"
)

func main() {
	seed := flag.Uint64("seed", 1, "process-level seed for per-side generators")
	matches := flag.Int("matches", meta.NUMBER_OF_GAMES, "number of concurrent matches")
	sweep := flag.Bool("sweep", false, "run the seed sweep experiment instead of a single batch")
	flag.Parse()

	if *sweep {
		experiments.RunSeedSweep()
		return
	}

	fmt.Printf("Running %d matches with seed %d...\n", *matches, *seed)
	local := engine.NewLocal(*matches, *seed)
	tally := local.Run()
	fmt.Printf("Results: %d player wins, %d enemy wins, %d draws\n", tally.PlayerWins, tally.EnemyWins, tally.Draws)
}

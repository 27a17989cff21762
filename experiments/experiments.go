package experiments

import (
	"fmt"

	"cardduel/engine"
	"cardduel/experiments/metrics"
	"cardduel/meta"

	"github.com/rs/zerolog/log"
)

const NumSeeds = 10

// RunSeedSweep runs one full batch of matches per seed and records every
// batch and match outcome to CSV. Batches are deterministic per seed, so
// each config runs exactly once.
func RunSeedSweep() {
	configs := make([]metrics.BatchConfig, NumSeeds)
	for i := range configs {
		configs[i] = metrics.BatchConfig{
			ID:      i + 1,
			Seed:    uint64(i + 1),
			Matches: meta.NUMBER_OF_GAMES,
		}
	}

	runExperiment("seed_sweep", configs)
}

func runExperiment(name string, configs []metrics.BatchConfig) {
	count := 0
	batchRecords := []metrics.BatchRecord{}
	matchRecords := []metrics.MatchRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting batch %d of %d with seed %d...", ci+1, len(configs), config.Seed)

		collector := metrics.NewCollector()
		collector.Start(config.Seed, config.Matches)

		local := engine.NewLocal(config.Matches, config.Seed, engine.WithCollector(collector))
		tally := local.Run()

		count++
		batchRecords = append(batchRecords, metrics.BatchRecord{
			ID:          count,
			Config:      config.ID,
			BatchMetric: collector.Complete(tally.PlayerWins, tally.EnemyWins, tally.Draws),
		})
		for _, m := range local.Matches {
			matchRecords = append(matchRecords, metrics.MatchRecord{
				Batch: count,
				MatchMetric: metrics.MatchMetric{
					ID:           m.ID,
					Winner:       m.Side,
					TurnCount:    m.TurnCount,
					PlayerHealth: m.Player.Deck.Health,
					EnemyHealth:  m.Enemy.Deck.Health,
				},
			})
		}

		log.Info().Msgf("completed batch %d of %d in %d ticks", ci+1, len(configs), local.Ticks())
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteBatchConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store batch configs: %v", err))
	}
	log.Info().Msg("stored batch configs")

	// Store experiment results
	err = writer.WriteBatchRecords(batchRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write batch records: %v", err))
	}
	log.Info().Msg("stored batch records")

	err = writer.WriteMatchRecords(matchRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write match records: %v", err))
	}
	log.Info().Msg("stored match records")
}

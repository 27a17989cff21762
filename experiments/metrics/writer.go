package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a writer rooted at a timestamped subfolder for the named
// experiment.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteBatchConfigs(configs []BatchConfig) error {
	path := filepath.Join(w.baseDir, "batch_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create batch configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "seed", "matches"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write batch configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.FormatUint(config.Seed, 10),
			strconv.Itoa(config.Matches),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write batch config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteBatchRecords(records []BatchRecord) error {
	path := filepath.Join(w.baseDir, "batch_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create batch records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "config", "seed", "matches", "ticks", "player_wins", "enemy_wins", "draws", "start_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write batch records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Config),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Matches),
			strconv.Itoa(record.Ticks),
			strconv.Itoa(record.PlayerWins),
			strconv.Itoa(record.EnemyWins),
			strconv.Itoa(record.Draws),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write batch record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	path := filepath.Join(w.baseDir, "match_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create match records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"batch", "match", "winner", "turn_count", "player_health", "enemy_health"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write match records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Batch),
			strconv.Itoa(record.ID),
			record.Winner.String(),
			strconv.Itoa(record.TurnCount),
			strconv.Itoa(record.PlayerHealth),
			strconv.Itoa(record.EnemyHealth),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write match record row: %w", err)
		}
	}

	return nil
}

package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "type", "depth", "seed"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Type,
			strconv.Itoa(config.Depth),
			strconv.FormatUint(config.Seed, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "winner", "score1", "score2", "moves", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Winner,
			strconv.Itoa(record.Score1),
			strconv.Itoa(record.Score2),
			strconv.Itoa(record.Moves),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "player", "nodes", "pruned", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Pruned),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}

package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AgentConfig struct {
	ID          int           `mapstructure:"id" yaml:"id"`
	Name        string        `mapstructure:"name" yaml:"name"`
	Kind        string        `mapstructure:"kind" yaml:"kind"` // alphabeta, mtdf, mcts or random
	Heuristic   string        `mapstructure:"heuristic" yaml:"heuristic,omitempty"`
	Depth       int           `mapstructure:"depth" yaml:"depth,omitempty"`
	Iterations  int           `mapstructure:"iterations" yaml:"iterations,omitempty"`
	Duration    time.Duration `mapstructure:"duration" yaml:"duration,omitempty"`
	Exploration float64       `mapstructure:"exploration" yaml:"exploration,omitempty"`
	Temperature float64       `mapstructure:"temperature" yaml:"temperature,omitempty"` // Samples MCTS moves when positive
	Seed        uint64        `mapstructure:"seed" yaml:"seed,omitempty"`
}

type GameRecord struct {
	ID    int
	Black int // AgentConfig.ID
	White int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold the files of one experiment.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "name", "kind", "heuristic", "depth", "iterations", "duration", "exploration", "temperature", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Name,
			config.Kind,
			config.Heuristic,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Iterations),
			config.Duration.String(),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			strconv.FormatFloat(config.Temperature, 'f', -1, 64),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "black", "white", "winner", "black_discs", "white_discs", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Black),
			strconv.Itoa(record.White),
			strconv.Itoa(int(record.Winner)),
			strconv.Itoa(record.BlackDiscs),
			strconv.Itoa(record.WhiteDiscs),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "row", "col", "algorithm", "depth", "duration", "episodes", "nodes", "table_entries", "table_hits", "is_tree_reused"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(int(record.Player)),
			strconv.Itoa(record.Move.Row),
			strconv.Itoa(record.Move.Col),
			record.Algorithm,
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.TableEntries),
			strconv.Itoa(record.TableHits),
			strconv.FormatBool(record.IsTreeReused),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) WriteSummary(summary Summary) error {
	path := filepath.Join(w.baseDir, "summary.yaml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	err = encoder.Encode(summary)
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

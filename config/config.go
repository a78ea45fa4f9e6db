// Package config loads experiment settings from defaults, an optional YAML
// file, OTHELLO_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"othello/experiments/metrics"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	CommandSelfPlay   = "selfplay"
	CommandRate       = "rate"
	CommandRank       = "rank"
	CommandThroughput = "throughput"
)

var Commands = []string{CommandSelfPlay, CommandRate, CommandRank, CommandThroughput}

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
)

type Config struct {
	Command     string        `mapstructure:"-"`
	LogLevel    string        `mapstructure:"log-level"`
	Kind        string        `mapstructure:"kind"`
	Depth       int           `mapstructure:"depth"`
	Heuristic   string        `mapstructure:"heuristic"`
	Iterations  int           `mapstructure:"iterations"`
	Duration    time.Duration `mapstructure:"duration"`
	Exploration float64       `mapstructure:"exploration"`
	Temperature float64       `mapstructure:"temperature"`
	Seed        uint64        `mapstructure:"seed"`
	Rounds      int           `mapstructure:"rounds"`
	Games       int           `mapstructure:"games"`
	Workers     int           `mapstructure:"workers"`
	OutputDir   string        `mapstructure:"output-dir"`

	// Players is only read from the config file.
	Players []metrics.AgentConfig `mapstructure:"players"`
}

func flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("othello", pflag.ContinueOnError)
	fs.String("config", "", "YAML config file")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.String("kind", "alphabeta", "Agent kind: alphabeta, mtdf, mcts or random")
	fs.Int("depth", 3, "Search depth of alphabeta and mtdf agents")
	fs.String("heuristic", "human", "Heuristic of alphabeta and mtdf agents")
	fs.Int("iterations", 1000, "MCTS iterations per move")
	fs.Duration("duration", 0, "MCTS time budget per move")
	fs.Float64("exploration", 1.42, "MCTS exploration constant")
	fs.Float64("temperature", 0, "Sample MCTS moves with this temperature when positive")
	fs.Uint64("seed", 0, "Random seed, 0 for a random one")
	fs.Int("rounds", 200, "Rounds of the rate command, two games each")
	fs.Int("games", 100, "Games of the selfplay, rank and throughput commands")
	fs.Int("workers", 4, "Games played in parallel")
	fs.String("output-dir", "results", "Directory for experiment records, empty to skip")
	return fs
}

// Load parses args, the command line without the program name. The first
// positional argument is the command.
func Load(args []string) (*Config, error) {
	fs := flags()
	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("OTHELLO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	err = v.BindPFlags(fs)
	if err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		err = v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Command = fs.Arg(0)
	if cfg.Command == "" {
		return nil, ErrNoCommand
	}
	if !lo.Contains(Commands, cfg.Command) {
		return nil, fmt.Errorf("%w %q, expected one of %s", ErrUnknownCommand, cfg.Command, strings.Join(Commands, ", "))
	}
	for i := range cfg.Players {
		if cfg.Players[i].ID == 0 {
			cfg.Players[i].ID = i + 1
		}
	}
	return &cfg, nil
}

// Agent is the agent described by the top-level settings.
func (c *Config) Agent() metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:          1,
		Kind:        c.Kind,
		Heuristic:   c.Heuristic,
		Depth:       c.Depth,
		Iterations:  c.Iterations,
		Duration:    c.Duration,
		Exploration: c.Exploration,
		Temperature: c.Temperature,
		Seed:        c.Seed,
	}
}

// Usage describes the commands and flags.
func Usage() string {
	var b strings.Builder
	b.WriteString("usage: othello <command> [flags]\n\ncommands:\n")
	b.WriteString("  selfplay    play the first two players (or the agent against itself), alternating colors\n")
	b.WriteString("  rate        rate the agent against the MCTS ladder\n")
	b.WriteString("  rank        rate the players against each other in random pairings\n")
	b.WriteString("  throughput  measure search speed of the players (or the agent)\n\nflags:\n")
	b.WriteString(flags().FlagUsages())
	return b.String()
}

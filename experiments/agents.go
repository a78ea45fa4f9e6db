package experiments

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"

	"lukechampine.com/frand"
)

const (
	KindAlphaBeta = "alphabeta"
	KindMTD       = "mtdf"
	KindMCTS      = "mcts"
	KindRandom    = "random"

	DefaultHeuristic = "human"
)

var ErrInvalidConfig = errors.New("invalid agent config")

// NewAgent builds a fresh agent, with its own tree or table, from config.
func NewAgent(config metrics.AgentConfig) (agent.Agent, error) {
	switch config.Kind {
	case KindAlphaBeta, KindMTD:
		if config.Depth <= 0 {
			return nil, fmt.Errorf("%w: %s needs a positive depth, got %d", ErrInvalidConfig, config.Kind, config.Depth)
		}
		name := config.Heuristic
		if name == "" {
			name = DefaultHeuristic
		}
		evaluate, err := game.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if config.Kind == KindMTD {
			return agent.NewMTDAgent(evaluate, config.Depth), nil
		}
		return agent.NewAlphaBetaAgent(evaluate, config.Depth), nil

	case KindMCTS:
		if config.Iterations <= 0 && config.Duration <= 0 {
			return nil, fmt.Errorf("%w: mcts needs iterations or a duration", ErrInvalidConfig)
		}
		mcts := createMCTS(config)
		if config.Temperature > 0 {
			return agent.NewSamplingAgent(mcts, config.Temperature, seedOf(config)+1), nil
		}
		return agent.NewEvaluationAgent(mcts), nil

	case KindRandom:
		return agent.NewRandomAgent(seedOf(config)), nil

	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, config.Kind)
	}
}

func createMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{}

	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	options = append(options, searcher.WithSeed(seedOf(config)))

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}

// seedOf returns the configured seed, or a random one when unset.
func seedOf(config metrics.AgentConfig) uint64 {
	if config.Seed == 0 {
		return frand.Uint64n(math.MaxUint64)
	}
	return config.Seed
}

// withGame derives a per-game seed so repeated games of a seeded agent differ
// but stay reproducible.
func withGame(config metrics.AgentConfig, index int) metrics.AgentConfig {
	if config.Seed != 0 {
		config.Seed += uint64(index)
	}
	return config
}

// assignIDs copies configs, giving a missing ID its position in the list.
// IDs must be unique since records refer to agents by ID.
func assignIDs(configs []metrics.AgentConfig) ([]metrics.AgentConfig, error) {
	configs = slices.Clone(configs)
	seen := make(map[int]bool, len(configs))
	for i := range configs {
		if configs[i].ID == 0 {
			configs[i].ID = i + 1
		}
		if seen[configs[i].ID] {
			return nil, fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, configs[i].ID)
		}
		seen[configs[i].ID] = true
	}
	return configs, nil
}

func nameOf(config metrics.AgentConfig) string {
	if config.Name != "" {
		return config.Name
	}
	switch config.Kind {
	case KindAlphaBeta, KindMTD:
		return fmt.Sprintf("%s-%d", config.Kind, config.Depth)
	case KindMCTS:
		if config.Iterations > 0 {
			return fmt.Sprintf("mcts-%d", config.Iterations)
		}
		return fmt.Sprintf("mcts-%s", config.Duration)
	default:
		return config.Kind
	}
}

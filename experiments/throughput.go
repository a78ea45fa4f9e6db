package experiments

import (
	"context"
	"fmt"

	"othello/experiments/metrics"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// Throughput is the search speed of one agent config measured in self-play.
type Throughput struct {
	Name              string  `yaml:"name"`
	Moves             int     `yaml:"moves"`
	NodesPerSecond    float64 `yaml:"nodes_per_second"`
	EpisodesPerSecond float64 `yaml:"episodes_per_second"`
	StdDevNodes       float64 `yaml:"stddev_nodes_per_second"`
}

// RunThroughput plays every config against itself and reports how many nodes
// and episodes it searches per second of move time.
func RunThroughput(ctx context.Context, configs []metrics.AgentConfig, games int, outputDir string) ([]Throughput, error) {
	configs, err := assignIDs(configs)
	if err != nil {
		return nil, err
	}

	// Same config for both players in each game
	// for similar game length and search effort per move
	matchUps := []matchUp{}
	for _, config := range configs {
		for i := 0; i < games; i++ {
			matchUps = append(matchUps, matchUp{id: len(matchUps) + 1, black: config, white: config})
		}
	}

	log.Info().Msgf("starting throughput experiment over %d configs...", len(configs))

	rec, err := runMatchUps(ctx, matchUps, 1, nil)
	if err != nil {
		return nil, err
	}

	configOf := map[int]int{}
	for _, g := range rec.games {
		configOf[g.ID] = g.Black
	}

	results := []Throughput{}
	for _, config := range configs {
		nodeRates, episodeRates := []float64{}, []float64{}
		for _, mr := range rec.moves {
			if configOf[mr.Game] != config.ID || mr.Duration <= 0 {
				continue
			}
			seconds := mr.Duration.Seconds()
			nodeRates = append(nodeRates, float64(mr.Nodes)/seconds)
			episodeRates = append(episodeRates, float64(mr.Episodes)/seconds)
		}
		t := Throughput{Name: nameOf(config), Moves: len(nodeRates)}
		if len(nodeRates) > 0 {
			t.NodesPerSecond = stat.Mean(nodeRates, nil)
			t.EpisodesPerSecond = stat.Mean(episodeRates, nil)
		}
		if len(nodeRates) > 1 {
			t.StdDevNodes = stat.StdDev(nodeRates, nil)
		}
		results = append(results, t)

		log.Info().
			Str("player", t.Name).
			Float64("nodes_per_second", t.NodesPerSecond).
			Float64("episodes_per_second", t.EpisodesPerSecond).
			Msg("throughput")
	}

	log.Info().Msg("completed throughput experiment")

	err = persist(outputDir, "throughput", configs, rec, metrics.Summarize("throughput", rec.games, nil))
	if err != nil {
		return results, fmt.Errorf("failed to store throughput records: %w", err)
	}
	return results, nil
}

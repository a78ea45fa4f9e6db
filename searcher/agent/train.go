package agent

import (
	"context"
	"math"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

type samplingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewSamplingAgent returns an MCTS agent that samples moves in proportion to
// visits^(1/temperature), so repeated games between the same agents diverge.
func NewSamplingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return &samplingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *samplingAgent) FindMove(ctx context.Context, state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric, error) {
	if state.GameOver() {
		return game.Move{}, metrics.SearchMetric{}, ErrGameOver
	}
	edges, metric, err := a.mcts.Simulate(ctx, state, updates)
	if err != nil {
		return game.Move{}, metric, err
	}
	policy := adjustTemperature(edges, a.temperature)
	return sample(edges, policy, a.rng.Float64()), metric, nil
}

func adjustTemperature(edges []searcher.Edge, temperature float64) []float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]float64, len(edges))
	for i, edge := range edges {
		adjusted[i] = math.Pow(edge.Visits, exponent)
		sum += adjusted[i]
	}
	if sum == 0 {
		for i := range adjusted {
			adjusted[i] = 1.0 / float64(len(adjusted))
		}
		return adjusted
	}
	// Normalize
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

func sample(edges []searcher.Edge, policy []float64, sampled float64) game.Move {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return edges[i].Move
		}
	}
	return edges[len(edges)-1].Move // Fallback in case of rounding errors
}

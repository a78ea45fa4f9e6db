package agent

import (
	"context"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(_ context.Context, state game.State, _ []searcher.Segment) (game.Move, metrics.SearchMetric, error) {
	moves := state.AvailableMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, ErrGameOver
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Algorithm: "random"}, nil
}

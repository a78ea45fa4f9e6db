package agent

import (
	"context"
	"errors"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

var ErrGameOver = errors.New("game is over")

type Agent interface {
	// FindMove returns the move to play in state and the metrics (if collected) of the search.
	// updates lists the moves played since the agent's previous decision.
	FindMove(ctx context.Context, state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric, error)
}

// counting wraps a heuristic so every evaluation is recorded as a searched node.
func counting(h game.Evaluate, collector metrics.Collector) game.Evaluate {
	return func(s game.State) float64 {
		collector.AddNode()
		return h(s)
	}
}

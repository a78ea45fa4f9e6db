package agent

import (
	"context"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an MCTS agent that always plays the move with the best win rate.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(ctx context.Context, state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric, error) {
	if state.GameOver() {
		return game.Move{}, metrics.SearchMetric{}, ErrGameOver
	}
	edges, metric, err := a.mcts.Simulate(ctx, state, updates)
	if err != nil {
		return game.Move{}, metric, err
	}
	return searcher.BestEdge(edges).Move, metric, nil
}

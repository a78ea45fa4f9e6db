package agent

import (
	"context"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type alphaBetaAgent struct {
	evaluate game.Evaluate
	depth    int
	metrics  metrics.Collector
}

// NewAlphaBetaAgent returns an agent that plays the best move found by
// alpha-beta to depth plies.
func NewAlphaBetaAgent(evaluate game.Evaluate, depth int) Agent {
	return &alphaBetaAgent{evaluate: evaluate, depth: depth, metrics: metrics.NewCollector()}
}

func (a *alphaBetaAgent) FindMove(ctx context.Context, state game.State, _ []searcher.Segment) (game.Move, metrics.SearchMetric, error) {
	if state.GameOver() {
		return game.Move{}, metrics.SearchMetric{}, ErrGameOver
	}
	if err := ctx.Err(); err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}

	a.metrics.Start("alphabeta", a.depth)
	_, move := searcher.AlphaBetaBestMove(counting(a.evaluate, a.metrics), state, a.depth)
	return move, a.metrics.Complete(), nil
}

type mtdAgent struct {
	evaluate game.Evaluate
	depth    int
	guess    float64
	metrics  metrics.Collector
}

// NewMTDAgent returns an agent that searches with MTD(f) and seeds every
// decision with the score of its previous one.
func NewMTDAgent(evaluate game.Evaluate, depth int) Agent {
	return &mtdAgent{evaluate: evaluate, depth: depth, metrics: metrics.NewCollector()}
}

func (a *mtdAgent) FindMove(ctx context.Context, state game.State, _ []searcher.Segment) (game.Move, metrics.SearchMetric, error) {
	if state.GameOver() {
		return game.Move{}, metrics.SearchMetric{}, ErrGameOver
	}
	if err := ctx.Err(); err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}

	a.metrics.Start("mtdf", a.depth)
	result := searcher.MTDSearch(counting(a.evaluate, a.metrics), state, a.depth, a.guess)
	a.guess = result.Value
	a.metrics.SetTable(result.Entries, result.Hits)
	return result.Move, a.metrics.Complete(), nil
}

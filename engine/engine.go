package engine

import (
	"context"
	"errors"

	"othello/experiments/metrics"
	"othello/game"
)

// MaxMoves bounds a game: every move fills one of the 60 free cells.
const MaxMoves = 60

var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays a game till it is over and returns the winner, Empty for a draw
	Run(ctx context.Context) (winner game.Color, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

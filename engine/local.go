package engine

import (
	"context"
	"fmt"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type Option func(e *LocalEngine)

var _ Engine = (*LocalEngine)(nil)

// LocalEngine plays two in-process agents against each other.
type LocalEngine struct {
	state   game.State
	agents  map[game.Color]agent.Agent
	updates map[game.Color][]searcher.Segment // Moves each agent has not seen yet
}

// WithStart starts the game from state instead of the standard position.
func WithStart(state game.State) Option {
	return func(e *LocalEngine) {
		e.state = state
	}
}

func NewLocalEngine(black, white agent.Agent, options ...Option) *LocalEngine {
	if black == nil || white == nil {
		panic("need an agent for each color")
	}
	e := &LocalEngine{
		state: game.NewState(),
		agents: map[game.Color]agent.Agent{
			game.Black: black,
			game.White: white,
		},
		updates: map[game.Color][]searcher.Segment{
			game.Black: {},
			game.White: {},
		},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) State() game.State {
	return e.state
}

// Run executes the entire game loop until neither player can move.
func (e *LocalEngine) Run(ctx context.Context) (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	moveMetrics := []metrics.MoveMetric{}

	for step := 1; !e.state.GameOver(); step++ {
		if step > MaxMoves {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("game exceeded %d moves", MaxMoves)
		}

		player := e.state.Player()
		move, searchMetric, err := e.agents[player].FindMove(ctx, e.state, e.updates[player])
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", player, err)
		}
		if !lo.Contains(e.state.AvailableMoves(), move) {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%s played %s: %w", player, move, ErrIllegalMove)
		}

		next := e.state.ApplyMove(move)
		e.updates[player] = []searcher.Segment{}
		for color := range e.updates {
			e.updates[color] = append(e.updates[color], searcher.NewSegment(move, next))
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Str("player", player.String()).Str("move", move.String()).Dur("duration", searchMetric.Duration).Msg("move played")

		e.state = next
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.BlackDiscs = e.state.Count(game.Black)
	gameMetric.WhiteDiscs = e.state.Count(game.White)
	gameMetric.Winner = e.state.Winner()

	return gameMetric.Winner, gameMetric, moveMetrics, nil
}

// PlayGame plays black against white from the standard position and returns
// the final position.
func PlayGame(ctx context.Context, black, white agent.Agent) (game.State, error) {
	e := NewLocalEngine(black, white)
	_, _, _, err := e.Run(ctx)
	return e.State(), err
}

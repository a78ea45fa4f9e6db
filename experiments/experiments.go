package experiments

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrTooFewPlayers = errors.New("at least two players are required")

// matchUp is one game between two agent configs.
type matchUp struct {
	id    int
	black metrics.AgentConfig
	white metrics.AgentConfig
}

// recorder collects the records of games played concurrently.
type recorder struct {
	mu    sync.Mutex
	games []metrics.GameRecord
	moves []metrics.MoveRecord
}

func (r *recorder) add(m matchUp, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games = append(r.games, metrics.GameRecord{
		ID:         m.id,
		Black:      m.black.ID,
		White:      m.white.ID,
		GameMetric: gameMetric,
	})
	for _, mm := range moveMetrics {
		r.moves = append(r.moves, metrics.MoveRecord{
			Game:       m.id,
			MoveMetric: mm,
		})
	}
}

// sort orders the records by game, since games finish out of order.
func (r *recorder) sort() {
	r.mu.Lock()
	defer r.mu.Unlock()
	slices.SortFunc(r.games, func(a, b metrics.GameRecord) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortStableFunc(r.moves, func(a, b metrics.MoveRecord) int { return cmp.Compare(a.Game, b.Game) })
}

// result is the outcome from black's perspective: 1 win, 0 draw, -1 loss.
func result(winner game.Color) int {
	return int(winner)
}

// runGame plays a single game between fresh agents built for the match up.
func runGame(ctx context.Context, m matchUp) (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	black, err := NewAgent(withGame(m.black, m.id))
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	white, err := NewAgent(withGame(m.white, m.id))
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	return engine.NewLocalEngine(black, white).Run(ctx)
}

// runMatchUps plays every match up with at most workers games at a time and
// calls done with each winner. done may be called concurrently.
func runMatchUps(ctx context.Context, matchUps []matchUp, workers int, done func(matchUp, game.Color) error) (*recorder, error) {
	if workers <= 0 {
		workers = 1
	}
	rec := &recorder{}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, m := range matchUps {
		m := m
		g.Go(func() error {
			log.Info().Msgf("starting game %d of %d between %s and %s...", m.id, len(matchUps), nameOf(m.black), nameOf(m.white))

			winner, gameMetric, moveMetrics, err := runGame(ctx, m)
			if err != nil {
				return fmt.Errorf("game %d: %w", m.id, err)
			}
			rec.add(m, gameMetric, moveMetrics)

			log.Info().
				Int("game", m.id).
				Str("black", nameOf(m.black)).
				Str("white", nameOf(m.white)).
				Str("winner", winner.String()).
				Int("moves", gameMetric.TotalMoves).
				Dur("duration", gameMetric.Duration).
				Msg("completed game")

			if done != nil {
				return done(m, winner)
			}
			return nil
		})
	}

	err := g.Wait()
	rec.sort()
	return rec, err
}

// persist writes the records of an experiment under outputDir. Nothing is
// written when outputDir is empty.
func persist(outputDir, name string, configs []metrics.AgentConfig, rec *recorder, summary metrics.Summary) error {
	if outputDir == "" {
		return nil
	}

	writer, err := metrics.NewWriter(outputDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(rec.games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(rec.moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	err = writer.WriteSummary(summary)
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored summary")
	return nil
}

package experiments

import (
	"context"
	"fmt"
	"math"

	"othello/experiments/elo"
	"othello/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// RunRating estimates the Elo of candidate against the MCTS ladder. Each
// round plays two games, one per color, against the MCTS rated closest to the
// running estimate.
func RunRating(ctx context.Context, candidate metrics.AgentConfig, rounds int, outputDir string) (int, error) {
	player := elo.NewPlayer(nameOf(candidate))
	rec := &recorder{}
	configs := []metrics.AgentConfig{candidate}
	seen := map[int]bool{}

	log.Info().Msgf("starting rating of %s over %d rounds...", player.Name, rounds)

	for round := 0; round < rounds; round++ {
		rung := elo.ClosestMCTS(player.Elo())
		reference := metrics.AgentConfig{
			ID:         -rung.Iterations,
			Name:       fmt.Sprintf("mcts-%d", rung.Iterations),
			Kind:       KindMCTS,
			Iterations: rung.Iterations,
			Seed:       candidate.Seed,
		}
		if !seen[rung.Iterations] {
			seen[rung.Iterations] = true
			configs = append(configs, reference)
		}

		for i, m := range []matchUp{
			{id: 2*round + 1, black: candidate, white: reference},
			{id: 2*round + 2, black: reference, white: candidate},
		} {
			winner, gameMetric, moveMetrics, err := runGame(ctx, m)
			if err != nil {
				return 0, fmt.Errorf("game %d: %w", m.id, err)
			}
			rec.add(m, gameMetric, moveMetrics)

			outcome := result(winner)
			if i == 1 { // Candidate played white
				outcome = -outcome
			}
			err = player.Update(rung.Elo, outcome)
			if err != nil {
				return 0, err
			}
		}

		log.Info().
			Int("round", round+1).
			Int("iterations", rung.Iterations).
			Float64("elo", player.Elo()).
			Msg("completed round")
	}

	rating := int(math.Round(player.Elo()))
	log.Info().Str("player", player.Name).Int("elo", rating).Msg("completed rating")

	ratings := []metrics.Rating{{Name: player.Name, Elo: player.Elo(), Games: player.Games()}}
	return rating, persist(outputDir, "rating", configs, rec, metrics.Summarize("rating", rec.games, ratings))
}

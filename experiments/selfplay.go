package experiments

import (
	"context"

	"othello/experiments/elo"
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

// RunSelfPlay plays games between two agents, alternating who plays black.
func RunSelfPlay(ctx context.Context, first, second metrics.AgentConfig, games, workers int, outputDir string) (metrics.Summary, error) {
	if first.ID == second.ID {
		second.ID = first.ID + 1
	}
	players := map[int]*elo.Player{
		first.ID:  elo.NewPlayer(nameOf(first)),
		second.ID: elo.NewPlayer(nameOf(second)),
	}

	matchUps := make([]matchUp, games)
	for i := range matchUps {
		if i%2 == 0 {
			matchUps[i] = matchUp{id: i + 1, black: first, white: second}
		} else {
			matchUps[i] = matchUp{id: i + 1, black: second, white: first}
		}
	}

	log.Info().Msgf("starting self-play of %s against %s over %d games...", nameOf(first), nameOf(second), games)

	rec, err := runMatchUps(ctx, matchUps, workers, func(m matchUp, winner game.Color) error {
		return elo.Update(players[m.black.ID], players[m.white.ID], result(winner))
	})
	if err != nil {
		return metrics.Summary{}, err
	}

	ratings := []metrics.Rating{}
	for _, config := range []metrics.AgentConfig{first, second} {
		p := players[config.ID]
		ratings = append(ratings, metrics.Rating{Name: p.Name, Elo: p.Elo(), Games: p.Games()})
	}
	summary := metrics.Summarize("selfplay", rec.games, ratings)

	log.Info().
		Int("black_wins", summary.BlackWins).
		Int("white_wins", summary.WhiteWins).
		Int("draws", summary.Draws).
		Float64("mean_length", summary.MeanLength).
		Msg("completed self-play")

	return summary, persist(outputDir, "selfplay", []metrics.AgentConfig{first, second}, rec, summary)
}

package experiments

import (
	"cmp"
	"context"
	"slices"

	"othello/experiments/elo"
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"
)

// RunRanking plays games between random pairs of distinct players and rates
// every player from the results. Ratings are returned strongest first.
func RunRanking(ctx context.Context, players []metrics.AgentConfig, games, workers int, outputDir string) ([]metrics.Rating, error) {
	if len(players) < 2 {
		return nil, ErrTooFewPlayers
	}

	players, err := assignIDs(players)
	if err != nil {
		return nil, err
	}
	ratings := lo.Map(players, func(config metrics.AgentConfig, _ int) *elo.Player {
		return elo.NewPlayer(nameOf(config))
	})
	indexOf := make(map[int]int, len(players))
	for i, config := range players {
		indexOf[config.ID] = i
	}

	matchUps := make([]matchUp, games)
	for i := range matchUps {
		black := frand.Intn(len(players))
		white := frand.Intn(len(players) - 1)
		if white >= black {
			white++ // Never self vs self
		}
		matchUps[i] = matchUp{id: i + 1, black: players[black], white: players[white]}
	}

	log.Info().Msgf("starting ranking of %d players over %d games...", len(players), games)

	rec, err := runMatchUps(ctx, matchUps, workers, func(m matchUp, winner game.Color) error {
		return elo.Update(ratings[indexOf[m.black.ID]], ratings[indexOf[m.white.ID]], result(winner))
	})
	if err != nil {
		return nil, err
	}

	results := lo.Map(ratings, func(p *elo.Player, _ int) metrics.Rating {
		return metrics.Rating{Name: p.Name, Elo: p.Elo(), Games: p.Games()}
	})
	slices.SortStableFunc(results, func(a, b metrics.Rating) int { return cmp.Compare(b.Elo, a.Elo) })

	for _, r := range results {
		log.Info().Str("player", r.Name).Float64("elo", r.Elo).Int("games", r.Games).Msg("rating")
	}
	log.Info().Msg("completed ranking")

	return results, persist(outputDir, "ranking", players, rec, metrics.Summarize("ranking", rec.games, results))
}

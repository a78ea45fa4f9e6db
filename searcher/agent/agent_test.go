package agent

import (
	"context"
	"testing"

	"othello/game"
	"othello/searcher"

	"github.com/stretchr/testify/require"
)

func finished() game.State {
	var board game.Board
	board[0][0] = game.Black
	board[0][1] = game.Black
	return game.NewStateFrom(board, game.White, 2)
}

func TestAgentsFindLegalMoves(t *testing.T) {
	ctx := context.Background()
	agents := map[string]Agent{
		"alphabeta": NewAlphaBetaAgent(game.Human, 2),
		"mtdf":      NewMTDAgent(game.Human, 2),
		"mcts":      NewEvaluationAgent(searcher.NewMCTS(searcher.WithIterations(30), searcher.WithSeed(1))),
		"sampling":  NewSamplingAgent(searcher.NewMCTS(searcher.WithIterations(30), searcher.WithSeed(1)), 1.0, 1),
		"random":    NewRandomAgent(1),
	}

	for name, a := range agents {
		t.Run(name, func(t *testing.T) {
			state := game.NewState()

			move, _, err := a.FindMove(ctx, state, nil)

			require.NoError(t, err)
			require.Contains(t, state.AvailableMoves(), move, "Agent should play a legal move")
		})

		t.Run(name+" refuses a finished game", func(t *testing.T) {
			_, _, err := a.FindMove(ctx, finished(), nil)

			require.ErrorIs(t, err, ErrGameOver, "Agent should not move after the game")
		})
	}
}

func TestMinimaxAgents(t *testing.T) {
	ctx := context.Background()

	t.Run("alpha-beta agent matches the search", func(t *testing.T) {
		state := game.NewState().ApplyMove(game.Move{Row: 2, Col: 3, Player: game.Black})
		_, expected := searcher.AlphaBetaBestMove(game.Human, state, 3)

		move, metric, err := NewAlphaBetaAgent(game.Human, 3).FindMove(ctx, state, nil)

		require.NoError(t, err)
		require.Equal(t, expected, move, "Agent should play the searched move")
		require.Equal(t, "alphabeta", metric.Algorithm)
		require.Equal(t, 3, metric.Depth)
		require.Positive(t, metric.Nodes, "Heuristic evaluations should be counted")
	})

	t.Run("mtd agent carries its score to the next decision", func(t *testing.T) {
		state := game.NewState()
		a := NewMTDAgent(game.Human, 3).(*mtdAgent)
		expected := searcher.MTDSearch(game.Human, state, 3, 0)

		move, metric, err := a.FindMove(ctx, state, nil)

		require.NoError(t, err)
		require.Equal(t, expected.Move, move, "Agent should play the searched move")
		require.Equal(t, expected.Value, a.guess, "Score should seed the next search")
		require.Equal(t, expected.Entries, metric.TableEntries, "Table size should be reported")
		require.Positive(t, metric.Nodes, "Heuristic evaluations should be counted")
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := NewAlphaBetaAgent(game.Human, 2).FindMove(cancelled, game.NewState(), nil)

		require.ErrorIs(t, err, context.Canceled, "Should not search after cancellation")
	})
}

func TestAdjustTemperature(t *testing.T) {
	edges := []searcher.Edge{{Visits: 1}, {Visits: 3}}

	t.Run("proportional to visits at temperature 1", func(t *testing.T) {
		got := adjustTemperature(edges, 1.0)

		require.InDeltaSlice(t, []float64{0.25, 0.75}, got, 1e-9, "Should normalize visit counts")
	})

	t.Run("sharpens at low temperature", func(t *testing.T) {
		got := adjustTemperature(edges, 0.5)

		require.InDeltaSlice(t, []float64{0.1, 0.9}, got, 1e-9, "Should square visit counts")
	})

	t.Run("uniform without visits", func(t *testing.T) {
		got := adjustTemperature([]searcher.Edge{{}, {}}, 1.0)

		require.InDeltaSlice(t, []float64{0.5, 0.5}, got, 1e-9, "Should fall back to uniform")
	})
}

func TestSample(t *testing.T) {
	edges := []searcher.Edge{
		{Move: game.Move{Row: 1}},
		{Move: game.Move{Row: 2}},
	}
	policy := []float64{0.25, 0.75}

	require.Equal(t, edges[0].Move, sample(edges, policy, 0.1), "Low draws should pick the first move")
	require.Equal(t, edges[1].Move, sample(edges, policy, 0.5), "High draws should pick the second move")
	require.Equal(t, edges[1].Move, sample(edges, []float64{0.3, 0.3}, 0.9), "Rounding errors should fall back to the last move")
}

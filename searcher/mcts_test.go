package searcher

import (
	"context"
	"testing"
	"time"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestNewMCTS(t *testing.T) {
	t.Run("panics without a budget", func(t *testing.T) {
		require.Panics(t, func() { NewMCTS() }, "Should panic without iterations or duration")
		require.Panics(t, func() { NewMCTS(WithIterations(-1)) }, "Should ignore non-positive iterations")
	})

	t.Run("defaults", func(t *testing.T) {
		m := NewMCTS(WithIterations(10))

		require.Equal(t, DefaultExploration, m.exploration, "Should use the default exploration constant")
		require.NotNil(t, m.rng, "Should seed a random source")
	})
}

func TestMCTSSimulate(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the iteration budget", func(t *testing.T) {
		m := NewMCTS(WithIterations(100), WithSeed(1), WithMetrics())
		state := game.NewState()

		edges, metric, err := m.Simulate(ctx, state, nil)

		require.NoError(t, err)
		require.Len(t, edges, 4, "Should report every opening move")
		require.Equal(t, 100, metric.Episodes, "Should run exactly the iteration budget")
		require.Equal(t, "mcts", metric.Algorithm)
		require.False(t, metric.IsTreeReused, "First search should build a new tree")
		require.Equal(t, m.tree.Visits(), float64(metric.Nodes), "Every rollout should be counted once")
		for i, move := range state.AvailableMoves() {
			require.Equal(t, move, edges[i].Move, "Edges should follow move generation order")
		}
	})

	t.Run("runs for a duration", func(t *testing.T) {
		m := NewMCTS(WithDuration(20*time.Millisecond), WithSeed(1), WithMetrics())

		_, metric, err := m.Simulate(ctx, game.NewState(), nil)

		require.NoError(t, err)
		require.Positive(t, metric.Episodes, "Should run at least one iteration")
	})

	t.Run("reuses the tree along the game", func(t *testing.T) {
		m := NewMCTS(WithIterations(100), WithSeed(2), WithMetrics())
		state := game.NewState()
		edges, _, err := m.Simulate(ctx, state, nil)
		require.NoError(t, err)

		black := BestEdge(edges).Move
		afterBlack := state.ApplyMove(black)
		white := afterBlack.AvailableMoves()[0]
		afterWhite := afterBlack.ApplyMove(white)
		lineage := []Segment{NewSegment(black, afterBlack), NewSegment(white, afterWhite)}

		_, metric, err := m.Simulate(ctx, afterWhite, lineage)

		require.NoError(t, err)
		require.True(t, metric.IsTreeReused, "Should continue from the explored subtree")
		require.Greater(t, m.tree.Visits(), 100.0, "Root should keep the statistics gathered earlier")
	})

	t.Run("resets the tree when the lineage does not match", func(t *testing.T) {
		m := NewMCTS(WithIterations(20), WithSeed(2), WithMetrics())
		_, _, err := m.Simulate(ctx, game.NewState(), nil)
		require.NoError(t, err)

		_, metric, err := m.Simulate(ctx, capture(), nil)

		require.NoError(t, err)
		require.False(t, metric.IsTreeReused, "Unrelated position should start a new tree")
		require.True(t, capture().Equal(m.tree.State()), "Root should hold the new position")
	})

	t.Run("fails on a finished game", func(t *testing.T) {
		m := NewMCTS(WithIterations(20))
		state := capture().ApplyMove(game.Move{Row: 0, Col: 2, Player: game.Black})

		_, _, err := m.Simulate(ctx, state, nil)

		require.ErrorIs(t, err, ErrNoMoves, "Should refuse to search without moves")
	})

	t.Run("fails when cancelled before the first iteration", func(t *testing.T) {
		m := NewMCTS(WithIterations(20))
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := m.Simulate(cancelled, game.NewState(), nil)

		require.ErrorIs(t, err, context.Canceled, "Should report the cancellation")
	})

	t.Run("same seed same decision", func(t *testing.T) {
		m1 := NewMCTS(WithIterations(50), WithSeed(7))
		m2 := NewMCTS(WithIterations(50), WithSeed(7))

		edges1, _, err1 := m1.Simulate(ctx, game.NewState(), nil)
		edges2, _, err2 := m2.Simulate(ctx, game.NewState(), nil)

		require.NoError(t, err1)
		require.NoError(t, err2)
		require.Equal(t, edges1, edges2, "Seeded searches should be reproducible")
	})
}

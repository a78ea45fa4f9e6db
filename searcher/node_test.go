package searcher

import (
	"math"
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
)

// capture returns a position where black's only move ends the game with a win.
func capture() game.State {
	var board game.Board
	board[0][0] = game.Black
	board[0][1] = game.White
	return game.NewStateFrom(board, game.Black, 0)
}

// doubleCapture gives black two moves. (7, 2) flips both white discs and wins
// at once, (6, 1) flips one and the game goes on.
func doubleCapture() game.State {
	var board game.Board
	board[7][0] = game.Black
	board[7][1] = game.White
	board[6][2] = game.White
	board[5][2] = game.Black
	board[6][3] = game.Black
	return game.NewStateFrom(board, game.Black, 0)
}

func TestNodeVisit(t *testing.T) {
	t.Run("materializes one child per legal move", func(t *testing.T) {
		state := game.NewState()
		root := newNode(nil, state, game.Move{})

		root.visit()

		require.True(t, root.visited, "Node should be marked visited")
		require.Len(t, root.children, 4, "Node should have a child per opening move")
		for i, move := range state.AvailableMoves() {
			child := root.children[i]
			require.Equal(t, move, child.move, "Children should follow move generation order")
			require.Same(t, root, child.parent, "Child should point back to its parent")
			require.True(t, state.ApplyMove(move).Equal(child.state), "Child should hold the successor state")
			require.Equal(t, game.White, child.player, "Child should record the player to move")
			require.Zero(t, child.n, "Child should start unvisited")
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		root := newNode(nil, game.NewState(), game.Move{})
		root.visit()
		first := root.children[0]
		first.n = 3

		root.visit()

		require.Same(t, first, root.children[0], "Children should never be rebuilt")
		require.Equal(t, 3.0, root.children[0].n, "Child stats should survive")
	})

	t.Run("terminal node has no children", func(t *testing.T) {
		state := capture().ApplyMove(game.Move{Row: 0, Col: 2, Player: game.Black})
		leaf := newNode(nil, state, game.Move{})

		leaf.visit()

		require.True(t, leaf.visited, "Terminal node should still be marked visited")
		require.Empty(t, leaf.children, "Terminal node should have no children")
		require.False(t, leaf.expanded(), "Terminal node should not count as expanded")
	})
}

func TestNodeUCB(t *testing.T) {
	policy := newUCT(DefaultExploration, 10)
	parent := &node{n: 10}

	t.Run("unvisited node", func(t *testing.T) {
		child := &node{parent: parent}

		require.Equal(t, math.Inf(1), child.ucb(policy, true), "Unvisited node should have infinite priority")
	})

	t.Run("root node", func(t *testing.T) {
		root := &node{n: 5, w: 5}

		require.Equal(t, 1.0, root.ucb(policy, true), "Root should score 1")
	})

	t.Run("searching color to move maximizes win rate", func(t *testing.T) {
		child := &node{parent: parent, n: 4, w: 3}

		expected := 0.75 + DefaultExploration*math.Sqrt(math.Log(10)/4)
		require.InDelta(t, expected, child.ucb(policy, true), 1e-9, "Should use w/n")
	})

	t.Run("opponent to move minimizes win rate", func(t *testing.T) {
		child := &node{parent: parent, n: 4, w: 3}

		expected := 0.25 + DefaultExploration*math.Sqrt(math.Log(10)/4)
		require.InDelta(t, expected, child.ucb(policy, false), 1e-9, "Should use 1 - w/n")
	})
}

func TestNodeBackup(t *testing.T) {
	t.Run("updates every ancestor", func(t *testing.T) {
		root := &node{}
		child := &node{parent: root}
		grandChild := &node{parent: child}

		grandChild.backup(Win)
		child.backup(Draw)

		require.Equal(t, 1.0, grandChild.n, "Leaf should gain a visit")
		require.Equal(t, 1.0, grandChild.w, "Leaf should gain the reward")
		require.Equal(t, 2.0, child.n, "Parent should gain both visits")
		require.Equal(t, 1.5, child.w, "Parent should gain both rewards")
		require.Equal(t, 2.0, root.n, "Root should gain both visits")
		require.Equal(t, 1.5, root.w, "Root should gain both rewards")
	})

	t.Run("win rate of unvisited node", func(t *testing.T) {
		require.Zero(t, (&node{}).winRate(), "Unvisited node should have a zero win rate")
	})
}

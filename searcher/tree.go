package searcher

import (
	"math"

	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// Edge summarizes a root move after a search.
type Edge struct {
	Move   game.Move
	Visits float64
	Wins   float64
}

func (e Edge) WinRate() float64 {
	if e.Visits == 0 {
		return 0.0
	}
	return e.Wins / e.Visits
}

// BestEdge exploits: it picks the highest win rate, first edge on ties.
func BestEdge(edges []Edge) Edge {
	if len(edges) == 0 {
		panic("node has no children")
	}
	return lo.MaxBy(edges, func(a, b Edge) bool {
		return a.WinRate() > b.WinRate()
	})
}

// Tree is a Monte Carlo search tree scored for a single color. It is not safe
// for concurrent use.
type Tree struct {
	color       game.Color
	exploration float64
	root        *node
	rng         *rand.Rand
	metrics     metrics.Collector
}

// NewTree roots a tree at state, searching for the player to move.
func NewTree(state game.State, seed uint64) *Tree {
	return newTree(state, DefaultExploration, rand.New(rand.NewSource(seed)), metrics.NewDummyCollector())
}

func newTree(state game.State, exploration float64, rng *rand.Rand, collector metrics.Collector) *Tree {
	return &Tree{
		color:       state.Player(),
		exploration: exploration,
		root:        newNode(nil, state, game.Move{}),
		rng:         rng,
		metrics:     collector,
	}
}

func (t *Tree) Color() game.Color   { return t.color }
func (t *Tree) State() game.State   { return t.root.state }
func (t *Tree) Visits() float64     { return t.root.n }
func (t *Tree) Wins() float64       { return t.root.w }
func (t *Tree) WinRate() float64    { return t.root.winRate() }
func (t *Tree) BestMove() game.Move { return BestEdge(t.Edges()).Move }

// Edges lists the root's children in move generation order.
func (t *Tree) Edges() []Edge {
	return lo.Map(t.root.children, func(child *node, _ int) Edge {
		return Edge{Move: child.move, Visits: child.n, Wins: child.w}
	})
}

// Iterate runs one selection, expansion, simulation and backup step and
// returns the move number of the expanded leaf.
func (t *Tree) Iterate() int {
	leaf := t.traverse()
	leaf.visit()
	for _, child := range leaf.children {
		child.backup(t.rollout(child.state))
	}
	leaf.backup(t.rollout(leaf.state))
	return leaf.state.MoveNumber()
}

func (t *Tree) traverse() *node {
	current := t.root
	for current.expanded() {
		playMax := current.player == t.color
		policy := newUCT(t.exploration, current.n)

		best := current.children[0]
		bestScore := math.Inf(-1)
		for _, child := range current.children {
			if score := child.ucb(policy, playMax); score > bestScore {
				bestScore = score
				best = child
			}
		}
		current = best
	}
	return current
}

// rollout plays uniformly random moves to the end of the game.
func (t *Tree) rollout(state game.State) float64 {
	t.metrics.AddNode()
	moves := state.AvailableMoves()
	for len(moves) > 0 {
		state = state.ApplyMove(moves[t.rng.Intn(len(moves))])
		moves = state.AvailableMoves()
	}
	return reward(state.Winner(), t.color)
}

// Advance moves the root to the child whose board matches state, keeping its
// statistics. Without a match the tree restarts from state.
func (t *Tree) Advance(state game.State) bool {
	child, ok := lo.Find(t.root.children, func(c *node) bool {
		return c.state.Equal(state)
	})
	if !ok {
		t.root = newNode(nil, state, game.Move{})
		return false
	}
	child.parent = nil
	t.root = child
	return true
}

// follow walks the moves played since the last search. It leaves the tree
// untouched when the path leaves the explored tree.
func (t *Tree) follow(lineage []Segment) bool {
	current := t.root
	for _, segment := range lineage {
		child, ok := lo.Find(current.children, func(c *node) bool {
			return c.move == segment.Move
		})
		if !ok { // Node has not expanded this move
			return false
		}
		if hash := child.state.Hash(); hash != segment.Hash || !child.state.Equal(segment.State) {
			log.Warn().Msgf("node's board %d does not match segment's board %d", hash, segment.Hash)
			return false
		}
		current = child
	}
	current.parent = nil
	t.root = current
	return true
}

// Evaluate returns the root win rate for the player to move after the given
// number of iterations.
func Evaluate(state game.State, iterations int, seed uint64) float64 {
	tree := NewTree(state, seed)
	for i := 0; i < iterations; i++ {
		tree.Iterate()
	}
	return tree.WinRate()
}

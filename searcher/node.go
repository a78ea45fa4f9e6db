package searcher

import (
	"math"

	"othello/game"
)

// node is a position in the search tree. A parent owns its children; the
// parent pointer is only followed during backup.
type node struct {
	parent   *node
	state    game.State
	move     game.Move // Move that produced state, zero at the root
	player   game.Color
	w        float64 // Accumulated rewards for the searching color
	n        float64 // Visits
	children []*node
	visited  bool
}

func newNode(parent *node, state game.State, move game.Move) *node {
	return &node{
		parent: parent,
		state:  state,
		move:   move,
		player: state.Player(),
	}
}

// visit materializes one child per legal move. It runs at most once per node.
func (nd *node) visit() {
	if nd.visited {
		return
	}
	moves := nd.state.AvailableMoves()
	nd.children = make([]*node, len(moves))
	for i, move := range moves {
		nd.children[i] = newNode(nd, nd.state.ApplyMove(move), move)
	}
	nd.visited = true
}

// expanded is false for unvisited and terminal nodes.
func (nd *node) expanded() bool {
	return nd.visited && len(nd.children) > 0
}

// ucb scores the node as a candidate of its parent. playMax is true when the
// parent's player to move is the searching color.
func (nd *node) ucb(policy *uct, playMax bool) float64 {
	if nd.n == 0 {
		return math.Inf(1)
	}
	if nd.parent == nil {
		return 1.0
	}
	q := nd.w / nd.n
	if !playMax {
		q = 1.0 - q
	}
	return policy.evaluate(q, nd.n)
}

func (nd *node) winRate() float64 {
	if nd.n == 0 {
		return 0.0
	}
	return nd.w / nd.n
}

func (nd *node) backup(reward float64) {
	for node := nd; node != nil; node = node.parent {
		node.w += reward
		node.n++
	}
}

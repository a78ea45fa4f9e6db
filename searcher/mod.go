package searcher

import (
	"errors"

	"othello/game"
)

// Rollout rewards from the searching color's perspective
const (
	Win  = 1.0
	Draw = 0.5
	Loss = 0.0
)

const DefaultExploration = 1.42 // UCB1 exploration constant

var ErrNoMoves = errors.New("no legal moves to search")

// Segment is a move played since an agent's last search together with the
// state it produced and that state's hash.
type Segment struct {
	Move  game.Move
	State game.State
	Hash  game.StateHash
}

func NewSegment(move game.Move, state game.State) Segment {
	return Segment{Move: move, State: state, Hash: state.Hash()}
}

func reward(winner, color game.Color) float64 {
	switch winner {
	case color:
		return Win
	case game.Empty:
		return Draw
	default:
		return Loss
	}
}

// childMaximizing flips the side to optimize unless the opponent had to pass.
func childMaximizing(parent, child game.State, maximizing bool) bool {
	if child.Player() == parent.Player() {
		return maximizing
	}
	return !maximizing
}

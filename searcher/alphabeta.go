package searcher

import (
	"math"

	"othello/game"
)

// AlphaBeta is minimax with alpha-beta pruning. Scores are from black's
// perspective and maximizing is true when black is to move.
func AlphaBeta(h game.Evaluate, state game.State, depth int, maximizing bool, alpha, beta float64) float64 {
	if depth <= 0 || state.GameOver() {
		return h(state)
	}

	if maximizing {
		value := math.Inf(-1)
		for _, move := range state.AvailableMoves() {
			child := state.ApplyMove(move)
			value = math.Max(value, AlphaBeta(h, child, depth-1, childMaximizing(state, child, maximizing), alpha, beta))
			alpha = math.Max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, move := range state.AvailableMoves() {
		child := state.ApplyMove(move)
		value = math.Min(value, AlphaBeta(h, child, depth-1, childMaximizing(state, child, maximizing), alpha, beta))
		beta = math.Min(beta, value)
		if alpha >= beta {
			break
		}
	}
	return value
}

// AlphaBetaBestMove searches every root move to depth-1 and returns the first
// move with the best score for the player to move, along with that score from
// black's perspective. It panics when the player to move has no move.
func AlphaBetaBestMove(h game.Evaluate, state game.State, depth int) (float64, game.Move) {
	moves := state.AvailableMoves()
	if len(moves) == 0 {
		panic(ErrNoMoves)
	}

	maximizing := state.Player() == game.Black
	sign := float64(state.Player())
	alpha, beta := math.Inf(-1), math.Inf(1)

	bestMove := moves[0]
	bestScore := math.Inf(-1)
	bestValue := 0.0
	for _, move := range moves {
		child := state.ApplyMove(move)
		value := AlphaBeta(h, child, depth-1, childMaximizing(state, child, maximizing), alpha, beta)
		if score := sign * value; score > bestScore {
			bestScore = score
			bestMove = move
			bestValue = value
			// Later moves only matter if they beat this one
			if maximizing {
				alpha = value
			} else {
				beta = value
			}
		}
	}
	return bestValue, bestMove
}

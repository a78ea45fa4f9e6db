package searcher

import (
	"math"

	"othello/game"
)

// MTDF converges on the minimax value of state with repeated zero-window
// searches around guess. Every call owns a fresh transposition table.
func MTDF(h game.Evaluate, state game.State, depth int, maximizing bool, guess float64) float64 {
	return MTDFWithTable(NewTranspositionTable(), h, state, depth, maximizing, guess)
}

// MTDFWithTable is MTDF over a caller-owned table.
func MTDFWithTable(table *TranspositionTable, h game.Evaluate, state game.State, depth int, maximizing bool, guess float64) float64 {
	g := guess
	lower, upper := math.Inf(-1), math.Inf(1)
	for lower < upper {
		beta := g
		if g == lower {
			beta = g + 1
		}
		g = alphaBetaWithMemory(table, h, state, depth, maximizing, beta-1, beta)
		if g < beta {
			upper = g
		} else {
			lower = g
		}
	}
	return g
}

func alphaBetaWithMemory(table *TranspositionTable, h game.Evaluate, state game.State, depth int, maximizing bool, alpha, beta float64) float64 {
	if bounds, ok := table.lookup(state); ok {
		if bounds.Lower >= beta {
			return bounds.Lower
		}
		if bounds.Upper <= alpha {
			return bounds.Upper
		}
		alpha = math.Max(alpha, bounds.Lower)
		beta = math.Min(beta, bounds.Upper)
	}

	var g float64
	switch {
	case depth <= 0 || state.GameOver():
		g = h(state)
	case maximizing:
		g = math.Inf(-1)
		a := alpha
		for _, move := range state.AvailableMoves() {
			child := state.ApplyMove(move)
			g = math.Max(g, alphaBetaWithMemory(table, h, child, depth-1, childMaximizing(state, child, maximizing), a, beta))
			a = math.Max(a, g)
			if g >= beta {
				break
			}
		}
	default:
		g = math.Inf(1)
		b := beta
		for _, move := range state.AvailableMoves() {
			child := state.ApplyMove(move)
			g = math.Min(g, alphaBetaWithMemory(table, h, child, depth-1, childMaximizing(state, child, maximizing), alpha, b))
			b = math.Min(b, g)
			if g <= alpha {
				break
			}
		}
	}

	bounds, ok := table.Get(state)
	if !ok {
		bounds = Bounds{Lower: math.Inf(-1), Upper: math.Inf(1)}
	}
	switch {
	case g <= alpha: // Fail low
		bounds.Upper = g
	case g >= beta: // Fail high
		bounds.Lower = g
	default:
		bounds.Lower, bounds.Upper = g, g
	}
	table.store(state, bounds)
	return g
}

// MTDResult is a root decision along with the size of the transposition
// tables it filled.
type MTDResult struct {
	Value   float64 // Black's perspective
	Move    game.Move
	Entries int
	Hits    int
}

// MTDSearch scores every root move with MTDF to depth-1, seeding each search
// with the best score found so far, starting from guess. It keeps the first
// best move for the player to move and panics when there is none.
func MTDSearch(h game.Evaluate, state game.State, depth int, guess float64) MTDResult {
	moves := state.AvailableMoves()
	if len(moves) == 0 {
		panic(ErrNoMoves)
	}

	maximizing := state.Player() == game.Black
	sign := float64(state.Player())

	result := MTDResult{Move: moves[0], Value: guess}
	bestScore := math.Inf(-1)
	for _, move := range moves {
		child := state.ApplyMove(move)
		table := NewTranspositionTable()
		value := MTDFWithTable(table, h, child, depth-1, childMaximizing(state, child, maximizing), result.Value)
		result.Entries += table.Len()
		result.Hits += table.Hits()
		if score := sign * value; score > bestScore {
			bestScore = score
			result.Move = move
			result.Value = value
		}
	}
	return result
}

// MTDBestMove returns the move chosen by MTDSearch and its score from black's
// perspective.
func MTDBestMove(h game.Evaluate, state game.State, depth int, guess float64) (float64, game.Move) {
	result := MTDSearch(h, state, depth, guess)
	return result.Value, result.Move
}

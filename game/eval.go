package game

import (
	"errors"
	"fmt"
)

// TerminalScore scales the winner of a finished game so that it dominates any
// evaluation of a game in progress.
const TerminalScore = 1_000_000.0

const (
	boardWeight    = 0.8
	mobilityWeight = 0.4
	mobilityScale  = 10.0
)

// gridWeights favors corners and edges and penalizes the squares next to corners.
var gridWeights = [Size][Size]int{
	{120, -20, 20, 5, 5, 20, -20, 120},
	{-20, -40, -5, -5, -5, -5, -40, -20},
	{20, -5, 15, 3, 3, 15, -5, 20},
	{5, -5, 3, 3, 3, 3, -5, 5},
	{5, -5, 3, 3, 3, 3, -5, 5},
	{20, -5, 15, 3, 3, 15, -5, 20},
	{-20, -40, -5, -5, -5, -5, -40, -20},
	{120, -20, 20, 5, 5, 20, -20, 120},
}

var gridWeightsSum = func() int {
	sum := 0
	for _, row := range gridWeights {
		for _, w := range row {
			sum += w
		}
	}
	return sum
}()

// gridSymmetry maps every square to one of 10 classes of squares that are
// equivalent under the board's mirror symmetries.
var gridSymmetry = [Size][Size]int{
	{0, 1, 2, 3, 3, 2, 1, 0},
	{1, 4, 5, 6, 6, 5, 4, 1},
	{2, 5, 7, 8, 8, 7, 5, 2},
	{3, 6, 8, 9, 9, 8, 6, 3},
	{3, 6, 8, 9, 9, 8, 6, 3},
	{2, 5, 7, 8, 8, 7, 5, 2},
	{1, 4, 5, 6, 6, 5, 4, 1},
	{0, 1, 2, 3, 3, 2, 1, 0},
}

// classCounts is the number of squares in each symmetry class divided by 4.
var classCounts = [10]int{1, 2, 2, 2, 1, 2, 2, 1, 2, 1}

var ErrZeroWeights = errors.New("weights normalize to zero")

func terminal(s State) float64 {
	return TerminalScore * float64(s.Winner())
}

// Human blends the positional weight grid with the mobility of the player to move.
func Human(s State) float64 {
	moves := s.AvailableMoves()
	if len(moves) == 0 {
		return terminal(s)
	}

	boardSum := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			boardSum += int(s.board[r][c]) * gridWeights[r][c]
		}
	}
	mobility := int(s.current) * len(moves)

	return boardWeight/float64(gridWeightsSum)*float64(boardSum) +
		mobilityWeight/mobilityScale*float64(mobility)
}

// Material is the disc differential.
func Material(s State) float64 {
	if s.GameOver() {
		return terminal(s)
	}
	return float64(s.Evaluation())
}

// NewWeighted returns a positional heuristic with one weight per symmetry class,
// normalized so the full board of one color scores ±1.
func NewWeighted(weights [10]int) (Evaluate, error) {
	dot := 0
	for i, w := range weights {
		dot += classCounts[i] * w
	}
	if dot == 0 {
		return nil, fmt.Errorf("weights %v: %w", weights, ErrZeroWeights)
	}
	denominator := float64(4 * dot)

	return func(s State) float64 {
		if s.GameOver() {
			return terminal(s)
		}
		boardSum := 0
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				boardSum += int(s.board[r][c]) * weights[gridSymmetry[r][c]]
			}
		}
		return float64(boardSum) / denominator
	}, nil
}

var heuristics = map[string]Evaluate{
	"human":    Human,
	"material": Material,
}

// Lookup resolves a heuristic by name.
func Lookup(name string) (Evaluate, error) {
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
	return h, nil
}

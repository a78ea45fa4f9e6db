package game

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// State is an immutable Othello position. Operations on State always return a new copy.
type State struct {
	board      Board
	current    Color
	moveNumber int
}

// NewState returns the standard starting position with black to move.
func NewState() State {
	var board Board
	board[3][3], board[4][4] = White, White
	board[3][4], board[4][3] = Black, Black
	return State{board: board, current: Black}
}

// NewStateFrom builds an arbitrary position.
func NewStateFrom(board Board, current Color, moveNumber int) State {
	if current != Black && current != White {
		panic(fmt.Sprintf("invalid player to move: %d", current))
	}
	return State{board: board, current: current, moveNumber: moveNumber}
}

func (s State) Board() Board {
	return s.board
}

func (s State) At(row, col int) Color {
	return s.board[row][col]
}

func (s State) Player() Color {
	return s.current
}

func (s State) MoveNumber() int {
	return s.moveNumber
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// flanks reports whether placing player at (row, col) encloses at least one
// opponent disc along the ray (dr, dc).
func (s State) flanks(row, col, dr, dc int, player Color) bool {
	opponent := player.Opponent()
	r, c := row+dr, col+dc
	run := 0
	for inBounds(r, c) && s.board[r][c] == opponent {
		r, c = r+dr, c+dc
		run++
	}
	return run > 0 && inBounds(r, c) && s.board[r][c] == player
}

func (s State) isLegal(row, col int, player Color) bool {
	if s.board[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if s.flanks(row, col, d[0], d[1], player) {
			return true
		}
	}
	return false
}

func (s State) hasMove(player Color) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if s.isLegal(r, c, player) {
				return true
			}
		}
	}
	return false
}

// AvailableMoves lists the legal moves of the player to move in row-major order.
func (s State) AvailableMoves() []Move {
	moves := make([]Move, 0, 16)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if s.isLegal(r, c, s.current) {
				moves = append(moves, Move{Row: r, Col: c, Player: s.current})
			}
		}
	}
	return moves
}

func (s State) HasMove() bool {
	return s.hasMove(s.current)
}

// ApplyMove places the disc, flips every flanked run and hands the turn to the
// opponent, unless the opponent has no reply, in which case the mover plays again.
// Applying a move that is off the board, out of turn or onto an occupied cell panics.
func (s State) ApplyMove(move Move) State {
	if !inBounds(move.Row, move.Col) {
		panic(fmt.Sprintf("move %s is off the board", move))
	}
	if move.Player != s.current {
		panic(fmt.Sprintf("%s cannot move during %s's turn", move.Player, s.current))
	}
	if s.board[move.Row][move.Col] != Empty {
		panic(fmt.Sprintf("cell %s is occupied", move))
	}

	next := s
	opponent := move.Player.Opponent()
	for _, d := range directions {
		if !s.flanks(move.Row, move.Col, d[0], d[1], move.Player) {
			continue
		}
		r, c := move.Row+d[0], move.Col+d[1]
		for next.board[r][c] == opponent {
			next.board[r][c] = move.Player
			r, c = r+d[0], c+d[1]
		}
	}
	next.board[move.Row][move.Col] = move.Player
	next.moveNumber++

	next.current = opponent
	if !next.hasMove(opponent) {
		next.current = move.Player
	}
	return next
}

// GameOver reports whether the player to move is stuck. The pass rule in
// ApplyMove guarantees this only happens when neither side can move.
func (s State) GameOver() bool {
	return !s.HasMove()
}

// Winner returns Black, White or Empty for a draw. It panics on a game in progress.
func (s State) Winner() Color {
	if !s.GameOver() {
		panic("winner of a game in progress")
	}
	switch e := s.Evaluation(); {
	case e > 0:
		return Black
	case e < 0:
		return White
	default:
		return Empty
	}
}

// Evaluation is the disc differential, black minus white.
func (s State) Evaluation() int {
	sum := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sum += int(s.board[r][c])
		}
	}
	return sum
}

func (s State) Count(color Color) int {
	count := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if s.board[r][c] == color {
				count++
			}
		}
	}
	return count
}

// Equal compares board contents only.
func (s State) Equal(other State) bool {
	return s.board == other.board
}

// Hash digests board contents only, consistent with Equal.
func (s State) Hash() StateHash {
	var buf [Size * Size]byte
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			buf[r*Size+c] = byte(s.board[r][c] + 1)
		}
	}
	return StateHash(xxhash.Sum64(buf[:]))
}

func (s State) String() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	for r := 0; r < Size; r++ {
		fmt.Fprintf(&sb, "%d", r)
		for c := 0; c < Size; c++ {
			switch s.board[r][c] {
			case Black:
				sb.WriteString(" X")
			case White:
				sb.WriteString(" O")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "move %d, %s to play, black %d white %d",
		s.moveNumber, s.current, s.Count(Black), s.Count(White))
	return sb.String()
}

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// bruteForceMoves walks every ray cell by cell without sharing code with State.
func bruteForceMoves(s State) map[[2]int]bool {
	legal := map[[2]int]bool{}
	player := s.Player()
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if s.At(r, c) != Empty {
				continue
			}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					seen := 0
					for step := 1; step < Size; step++ {
						rr, cc := r+dr*step, c+dc*step
						if rr < 0 || rr >= Size || cc < 0 || cc >= Size {
							break
						}
						cell := s.At(rr, cc)
						if cell == -player {
							seen++
							continue
						}
						if cell == player && seen > 0 {
							legal[[2]int{r, c}] = true
						}
						break
					}
				}
			}
		}
	}
	return legal
}

func occupied(s State) int {
	return s.Count(Black) + s.Count(White)
}

func TestColor(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		require.Equal(t, "black", Black.String())
		require.Equal(t, "white", White.String())
		require.Equal(t, "draw", Empty.String(), "No winner reads as a draw")
	})

	t.Run("opponent", func(t *testing.T) {
		require.Equal(t, White, Black.Opponent())
		require.Equal(t, Black, White.Opponent())
	})
}

func TestNewState(t *testing.T) {
	t.Run("starting position", func(t *testing.T) {
		s := NewState()

		require.Equal(t, White, s.At(3, 3), "Center should hold two white discs")
		require.Equal(t, White, s.At(4, 4), "Center should hold two white discs")
		require.Equal(t, Black, s.At(3, 4), "Center should hold two black discs")
		require.Equal(t, Black, s.At(4, 3), "Center should hold two black discs")
		require.Equal(t, Black, s.Player(), "Black should move first")
		require.Equal(t, 0, s.MoveNumber(), "No move should have been played")
		require.Equal(t, 4, occupied(s), "Only the center should be occupied")
	})

	t.Run("rejects an empty player to move", func(t *testing.T) {
		require.Panics(t, func() {
			NewStateFrom(Board{}, Empty, 0)
		}, "Should panic when nobody is to move")
	})
}

func TestAvailableMoves(t *testing.T) {
	t.Run("black opening moves", func(t *testing.T) {
		got := NewState().AvailableMoves()

		expected := []Move{
			{Row: 2, Col: 3, Player: Black},
			{Row: 3, Col: 2, Player: Black},
			{Row: 4, Col: 5, Player: Black},
			{Row: 5, Col: 4, Player: Black},
		}
		require.Equal(t, expected, got, "Black should have exactly the four textbook opening moves")
	})

	t.Run("one move per cell when several rays flank", func(t *testing.T) {
		var board Board
		board[0][0] = Black
		board[1][1] = White
		board[2][0] = Black
		board[2][1] = White
		board[0][2] = Black
		board[1][2] = White
		s := NewStateFrom(board, Black, 0)

		count := 0
		for _, m := range s.AvailableMoves() {
			if m.Row == 2 && m.Col == 2 {
				count++
			}
		}
		require.Equal(t, 1, count, "Cell flanked in several directions should yield a single move")
	})

	t.Run("matches brute force along random games", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for game := 0; game < 20; game++ {
			s := NewState()
			for !s.GameOver() {
				expected := bruteForceMoves(s)
				moves := s.AvailableMoves()
				require.Len(t, moves, len(expected), "Move count should match brute force at move %d", s.MoveNumber())
				for _, m := range moves {
					require.True(t, expected[[2]int{m.Row, m.Col}], "Move %s should be legal by brute force", m)
					require.Equal(t, s.Player(), m.Player, "Moves should belong to the player to move")
				}
				s = s.ApplyMove(moves[rng.Intn(len(moves))])
			}
			require.Empty(t, bruteForceMoves(s), "Finished game should have no brute-force moves for the player to move")
		}
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("flips the flanked disc", func(t *testing.T) {
		s := NewState()

		got := s.ApplyMove(Move{Row: 2, Col: 3, Player: Black})

		require.Equal(t, Black, got.At(3, 3), "Flanked white disc should flip")
		require.Equal(t, Black, got.At(2, 3), "Disc should be placed")
		require.Equal(t, 4, got.Count(Black), "Black should own four discs")
		require.Equal(t, 1, got.Count(White), "White should own one disc")
		require.Equal(t, White, got.Player(), "Turn should pass to white")
		require.Equal(t, 1, got.MoveNumber(), "Move number should increase")
		require.Equal(t, White, s.At(3, 3), "Original state should not change")
		require.Equal(t, 0, s.MoveNumber(), "Original state should not change")
	})

	t.Run("fills exactly one cell per move", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		s := NewState()
		for !s.GameOver() {
			moves := s.AvailableMoves()
			move := moves[rng.Intn(len(moves))]
			next := s.ApplyMove(move)

			require.Equal(t, occupied(s)+1, occupied(next), "Each move should fill exactly one cell")
			gained := next.Count(move.Player) - s.Count(move.Player)
			lost := s.Count(move.Player.Opponent()) - next.Count(move.Player.Opponent())
			require.Equal(t, lost+1, gained, "Mover should gain the flipped discs plus the placed one")
			require.Positive(t, lost, "A legal move should flip at least one disc")
			s = next
		}
		require.LessOrEqual(t, s.MoveNumber(), 60, "A game cannot last longer than the empty cells")
	})

	t.Run("mover keeps the turn when the opponent must pass", func(t *testing.T) {
		var board Board
		board[0][0] = Black
		board[0][1] = White
		board[7][7] = Black
		board[7][6] = White
		s := NewStateFrom(board, Black, 0)

		got := s.ApplyMove(Move{Row: 0, Col: 2, Player: Black})

		require.Empty(t, NewStateFrom(got.Board(), White, 0).AvailableMoves(), "White should have no reply")
		require.Equal(t, Black, got.Player(), "Black should move again")
		require.False(t, got.GameOver(), "Black still has a move")
		require.Equal(t, []Move{{Row: 7, Col: 5, Player: Black}}, got.AvailableMoves(), "Black should be able to capture the last white disc")
	})

	t.Run("panics on faults", func(t *testing.T) {
		s := NewState()

		require.Panics(t, func() { s.ApplyMove(Move{Row: 2, Col: 3, Player: White}) }, "Should panic when moving out of turn")
		require.Panics(t, func() { s.ApplyMove(Move{Row: 3, Col: 3, Player: Black}) }, "Should panic on an occupied cell")
		require.Panics(t, func() { s.ApplyMove(Move{Row: 8, Col: 0, Player: Black}) }, "Should panic off the board")
		require.Panics(t, func() { s.ApplyMove(Move{Row: 0, Col: -1, Player: Black}) }, "Should panic off the board")
	})
}

func TestWinner(t *testing.T) {
	t.Run("panics during the game", func(t *testing.T) {
		require.Panics(t, func() { NewState().Winner() }, "Should panic before the game is over")
	})

	t.Run("sign of the disc differential", func(t *testing.T) {
		var board Board
		board[0][0] = Black
		board[0][1] = Black
		board[7][7] = White
		s := NewStateFrom(board, White, 10)

		require.True(t, s.GameOver(), "Nobody can flank anything")
		require.Equal(t, Black, s.Winner(), "Black has more discs")
		require.Equal(t, 1, s.Evaluation(), "Differential should be black minus white")

		board[7][6] = White
		require.Equal(t, Empty, NewStateFrom(board, White, 10).Winner(), "Equal counts should draw")
	})
}

func TestEquality(t *testing.T) {
	t.Run("board contents only", func(t *testing.T) {
		s := NewState()
		other := NewStateFrom(s.Board(), White, 17)

		require.True(t, s.Equal(other), "Player to move and move number should not matter")
		require.Equal(t, s.Hash(), other.Hash(), "Equal states should hash alike")

		moved := s.ApplyMove(Move{Row: 2, Col: 3, Player: Black})
		require.False(t, s.Equal(moved), "Different boards should differ")
		require.NotEqual(t, s.Hash(), moved.Hash(), "Different boards should hash differently")
	})
}

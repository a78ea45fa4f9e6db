package game

// Size is the width and height of the board.
const Size = 8

// Color is the content of a cell and doubles as the identity of a player.
// Black is positive so that every score in the game reads from black's side.
type Color int8

const (
	Empty Color = 0
	Black Color = 1
	White Color = -1
)

func (c Color) Opponent() Color {
	return -c
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "draw"
	}
}

type StateHash uint64

// Board is comparable, so it can key maps directly by its contents.
type Board [Size][Size]Color

// Evaluate scores a state from black's perspective: positive favors black,
// negative favors white. Implementations must be pure.
type Evaluate func(State) float64

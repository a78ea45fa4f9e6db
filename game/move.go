package game

import "fmt"

// Move places a disc of Player at (Row, Col).
type Move struct {
	Row    int
	Col    int
	Player Color
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

func (m Move) Describe() string {
	return fmt.Sprintf("%s placing at %s", m.Player, m)
}

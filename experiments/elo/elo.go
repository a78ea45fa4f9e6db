// Package elo keeps performance ratings: a player's rating is the average over
// its games of the opponent's rating, shifted by 400 for a win or a loss.
package elo

import (
	"errors"
	"fmt"
	"sync"
)

const (
	InitialElo = 1500.0
	Spread     = 400.0
)

var ErrInvalidResult = errors.New("invalid game result")

// Score is the performance score earned against an opponent rated opponent.
// result is 1 for a win, 0 for a draw and -1 for a loss.
func Score(opponent float64, result int) (float64, error) {
	switch result {
	case -1:
		return opponent - Spread, nil
	case 0:
		return opponent, nil
	case 1:
		return opponent + Spread, nil
	default:
		return 0, fmt.Errorf("%w %d", ErrInvalidResult, result)
	}
}

// Player is safe for concurrent use.
type Player struct {
	Name string

	mu    sync.Mutex
	score float64
	elo   float64
	games int
}

func NewPlayer(name string) *Player {
	return &Player{Name: name, elo: InitialElo}
}

func (p *Player) Elo() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.elo
}

func (p *Player) Games() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.games
}

// Update records a game against an opponent rated opponent.
func (p *Player) Update(opponent float64, result int) error {
	score, err := Score(opponent, result)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.score += score
	p.games++
	p.elo = p.score / float64(p.games)
	return nil
}

func (p *Player) String() string {
	return fmt.Sprintf("%s: elo=%.1f games=%d", p.Name, p.Elo(), p.Games())
}

// Update records a game from black's perspective: 1 when black won, -1 when
// white won, 0 for a draw. White is rated against black's updated rating.
func Update(black, white *Player, result int) error {
	if err := black.Update(white.Elo(), result); err != nil {
		return err
	}
	return white.Update(black.Elo(), -result)
}

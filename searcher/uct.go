package searcher

import "math"

type uct struct {
	c   float64
	lnN float64
}

func newUCT(c float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{c: c, lnN: math.Log(N)}
}

// evaluate scores a child with win rate q over n visits.
func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	// UCB1 = q + c*sqrt(ln(N)/n)
	return q + u.c*math.Sqrt(u.lnN/n)
}

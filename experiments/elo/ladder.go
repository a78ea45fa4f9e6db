package elo

import (
	"math"

	"github.com/samber/lo"
)

// Rung is a reference MCTS opponent of known strength.
type Rung struct {
	Iterations int
	Elo        float64
}

// DefaultRung is used when a ladder has no rungs.
var DefaultRung = Rung{Iterations: 1200, Elo: InitialElo}

// MCTSLadder rates MCTS by iteration count, measured in a round robin of MCTS agents.
var MCTSLadder = []Rung{
	{20, 1012.20463383862},
	{40, 1127.87709178272},
	{60, 1205.27736724821},
	{80, 1234.17603308075},
	{100, 1292.82881041256},
	{120, 1329.06287362451},
	{140, 1340.83270239907},
	{160, 1343.72336356304},
	{180, 1360.22856273615},
	{200, 1383.9571067387},
	{220, 1407.64918873246},
	{240, 1417.50449599938},
	{400, 1450.58257608757},
	{600, 1494.31028676273},
	{800, 1513.66172891599},
	{1000, 1532.63098289929},
	{1200, 1571.37667093234},
	{1400, 1582.29204351634},
	{1600, 1590.61891969016},
	{1800, 1582.90821004184},
	{2000, 1625.53533054869},
	{2200, 1620.59333453342},
	{2400, 1630.09425690247},
}

// Closest returns the rung rated closest to rating, the first one on ties.
func Closest(ladder []Rung, rating float64) Rung {
	if len(ladder) == 0 {
		return DefaultRung
	}
	return lo.MinBy(ladder, func(a, b Rung) bool {
		return math.Abs(a.Elo-rating) < math.Abs(b.Elo-rating)
	})
}

func ClosestMCTS(rating float64) Rung {
	return Closest(MCTSLadder, rating)
}

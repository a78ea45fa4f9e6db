package metrics

import (
	"othello/game"

	"gonum.org/v1/gonum/stat"
)

type Rating struct {
	Name  string  `yaml:"name"`
	Elo   float64 `yaml:"elo"`
	Games int     `yaml:"games"`
}

type Summary struct {
	Experiment   string   `yaml:"experiment"`
	Games        int      `yaml:"games"`
	BlackWins    int      `yaml:"black_wins"`
	WhiteWins    int      `yaml:"white_wins"`
	Draws        int      `yaml:"draws"`
	MeanLength   float64  `yaml:"mean_length"`
	StdDevLength float64  `yaml:"stddev_length"`
	MeanDiscDiff float64  `yaml:"mean_disc_diff"` // Black minus white
	Ratings      []Rating `yaml:"ratings,omitempty"`
}

// Summarize aggregates game outcomes and lengths.
func Summarize(experiment string, records []GameRecord, ratings []Rating) Summary {
	summary := Summary{
		Experiment: experiment,
		Games:      len(records),
		Ratings:    ratings,
	}
	if len(records) == 0 {
		return summary
	}

	lengths := make([]float64, len(records))
	diffs := make([]float64, len(records))
	for i, record := range records {
		lengths[i] = float64(record.TotalMoves)
		diffs[i] = float64(record.BlackDiscs - record.WhiteDiscs)
		switch record.Winner {
		case game.Black:
			summary.BlackWins++
		case game.White:
			summary.WhiteWins++
		default:
			summary.Draws++
		}
	}

	summary.MeanLength = stat.Mean(lengths, nil)
	if len(lengths) > 1 {
		summary.StdDevLength = stat.StdDev(lengths, nil)
	}
	summary.MeanDiscDiff = stat.Mean(diffs, nil)
	return summary
}

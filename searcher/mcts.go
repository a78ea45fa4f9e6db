package searcher

import (
	"context"
	"fmt"
	"math"
	"time"

	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Option func(mcts *MCTS)

// MCTS keeps one search tree across the decisions of a game and reuses the
// subtree reached by the moves played in between.
type MCTS struct {
	iterations  int
	duration    time.Duration
	exploration float64
	seed        uint64
	rng         *rand.Rand
	tree        *Tree
	metrics     metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: DefaultExploration,
		seed:        frand.Uint64n(math.MaxUint64),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 && m.duration <= 0 {
		panic("Must specify search iterations or duration")
	}
	m.rng = rand.New(rand.NewSource(m.seed))
	return m
}

// Simulate grows the tree for state and returns the statistics of every root
// move. The search stops at the iteration budget, the duration budget or when
// ctx is done, whichever comes first.
func (m *MCTS) Simulate(ctx context.Context, state game.State, lineage []Segment) ([]Edge, metrics.SearchMetric, error) {
	if state.GameOver() {
		return nil, metrics.SearchMetric{}, ErrNoMoves
	}

	m.metrics.Start("mcts", 0)
	m.findRoot(lineage, state)
	err := m.run(ctx)
	metric := m.metrics.Complete()

	if !m.tree.root.expanded() {
		return nil, metric, fmt.Errorf("search stopped before expanding the root: %w", err)
	}
	return m.tree.Edges(), metric, nil
}

func (m *MCTS) run(ctx context.Context) error {
	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}
	for i := 0; m.iterations <= 0 || i < m.iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 && !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		m.tree.Iterate()
		m.metrics.AddEpisode()
	}
	return nil
}

func (m *MCTS) findRoot(lineage []Segment, state game.State) {
	if m.tree != nil && m.tree.color == state.Player() && m.tree.follow(lineage) && m.tree.State().Equal(state) {
		m.tree.metrics = m.metrics
		m.metrics.SetTreeReused(true)
		return
	}
	m.tree = newTree(state, m.exploration, m.rng, m.metrics)
	m.metrics.SetTreeReused(false)
}

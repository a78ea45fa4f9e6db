package metrics

import (
	"sync/atomic"
	"time"

	"othello/game"
)

type SearchMetric struct {
	Algorithm    string        `yaml:"algorithm"`
	Depth        int           `yaml:"depth,omitempty"`
	Duration     time.Duration `yaml:"duration"`
	Episodes     int           `yaml:"episodes,omitempty"` // MCTS iterations
	Nodes        int           `yaml:"nodes"`              // Heuristic evaluations or rollouts
	TableEntries int           `yaml:"table_entries,omitempty"`
	TableHits    int           `yaml:"table_hits,omitempty"`
	IsTreeReused bool          `yaml:"is_tree_reused,omitempty"`
}

type MoveMetric struct {
	Step   int
	Player game.Color
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	Winner     game.Color
	BlackDiscs int
	WhiteDiscs int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector accumulates the metrics of a single search. Counters are safe for
// concurrent use.
type Collector interface {
	Start(algorithm string, depth int)
	SetTreeReused(value bool)
	SetTable(entries, hits int)
	AddNode()
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	algorithm    string
	depth        int
	startTime    time.Time
	episodes     atomic.Int64
	nodes        atomic.Int64
	tableEntries atomic.Int64
	tableHits    atomic.Int64
	isTreeReused atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, depth int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.depth = depth
	m.episodes.Store(0)
	m.nodes.Store(0)
	m.tableEntries.Store(0)
	m.tableHits.Store(0)
	m.isTreeReused.Store(false)
}

func (m *collector) SetTreeReused(value bool) {
	m.isTreeReused.Store(value)
}

func (m *collector) SetTable(entries, hits int) {
	m.tableEntries.Store(int64(entries))
	m.tableHits.Store(int64(hits))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:    m.algorithm,
		Depth:        m.depth,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		Nodes:        int(m.nodes.Load()),
		TableEntries: int(m.tableEntries.Load()),
		TableHits:    int(m.tableHits.Load()),
		IsTreeReused: m.isTreeReused.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) SetTreeReused(value bool)          {}
func (m *dummyCollector) SetTable(entries, hits int)        {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddEpisode()                       {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }

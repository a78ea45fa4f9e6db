package searcher

import "othello/game"

// Bounds brackets the minimax value of a position.
type Bounds struct {
	Lower float64
	Upper float64
}

// TranspositionTable caches search bounds by board contents. It is owned by a
// single search and is not safe for concurrent use.
type TranspositionTable struct {
	entries map[game.Board]Bounds
	lookups int
	hits    int
}

func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[game.Board]Bounds)}
}

func (t *TranspositionTable) lookup(state game.State) (Bounds, bool) {
	t.lookups++
	bounds, ok := t.entries[state.Board()]
	if ok {
		t.hits++
	}
	return bounds, ok
}

func (t *TranspositionTable) store(state game.State, bounds Bounds) {
	t.entries[state.Board()] = bounds
}

// Get returns the cached bounds of state without touching the counters.
func (t *TranspositionTable) Get(state game.State) (Bounds, bool) {
	bounds, ok := t.entries[state.Board()]
	return bounds, ok
}

func (t *TranspositionTable) Len() int     { return len(t.entries) }
func (t *TranspositionTable) Lookups() int { return t.lookups }
func (t *TranspositionTable) Hits() int    { return t.hits }

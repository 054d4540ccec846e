package perft

import (
	"github.com/rs/zerolog/log"
)

// MaxCachedDepth bounds how many remaining-depth levels the memo covers.
// Nodes deeper than this (larger remaining depth) are recomputed rather than
// cached, trading memory for reach.
const MaxCachedDepth = 8

// A TranspositionTable memoizes terminal-node counts, one map per
// remaining-depth level, keyed on board occupancy. The count rooted at a
// given occupancy with a given remaining depth is a pure function of those
// two values: line-clearing and the catalog are deterministic and this search
// mode is hand-independent. That is the whole soundness argument.
//
// Entries are only meaningful within one top-level search invocation. Callers
// reusing a table across independent runs must Clear it in between.
type TranspositionTable struct {
	tables [MaxCachedDepth]map[uint64]uint64

	lookups uint64
	hits    uint64
}

// NewTranspositionTable allocates an empty table.
func NewTranspositionTable() *TranspositionTable {
	t := &TranspositionTable{}
	for i := range t.tables {
		t.tables[i] = make(map[uint64]uint64)
	}
	return t
}

// Lookup returns the cached count for (occupancy, remaining) if present.
// remaining must be in [1, MaxCachedDepth].
func (t *TranspositionTable) Lookup(occupancy uint64, remaining int) (uint64, bool) {
	t.lookups++
	count, ok := t.tables[remaining-1][occupancy]
	if ok {
		t.hits++
	}
	return count, ok
}

// Store records the computed count for (occupancy, remaining).
func (t *TranspositionTable) Store(occupancy uint64, remaining int, count uint64) {
	t.tables[remaining-1][occupancy] = count
}

// Clear drops every entry and resets the counters. Must be called between
// independent top-level searches that share this table; stale entries from a
// differently-scoped run must not leak into a new one.
func (t *TranspositionTable) Clear() {
	for i := range t.tables {
		clear(t.tables[i])
	}
	t.lookups = 0
	t.hits = 0
}

// Entries returns the total number of stored entries across all levels.
func (t *TranspositionTable) Entries() int {
	n := 0
	for i := range t.tables {
		n += len(t.tables[i])
	}
	return n
}

// Stats returns the lookup and hit counters.
func (t *TranspositionTable) Stats() (lookups, hits uint64) {
	return t.lookups, t.hits
}

// LogStats emits the table's hit-rate counters at debug level.
func (t *TranspositionTable) LogStats() {
	log.Debug().
		Uint64("lookups", t.lookups).
		Uint64("hits", t.hits).
		Int("entries", t.Entries()).
		Msg("transposition-table-stats")
}

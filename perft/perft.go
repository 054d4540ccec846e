// Package perft counts reachable terminal states of the placement game tree
// to a bounded depth. It exists for correctness regression and throughput
// benchmarking, not interactive play: every node branches over the entire
// catalog rather than a 3-slot hand, which deliberately models the maximum
// branching case. Counts are therefore not comparable to real-game
// reachable-state counts, and that looseness is intentional.
package perft

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/blockfall/blockfall/board"
	"github.com/blockfall/blockfall/movegen"
	"github.com/blockfall/blockfall/pieces"
)

// CountTerminalNodes returns the number of terminal leaves of the placement
// tree rooted at b with the given remaining depth. A node at depth 0 is one
// leaf. A node with no legal placement across the entire catalog is also
// exactly one leaf (the game-over state), never zero: a branch with no
// children still terminates, it does not vanish.
//
// tt may be nil to disable memoization; the result is identical either way.
func CountTerminalNodes(b board.Board, depth int, catalog *pieces.Catalog, tt *TranspositionTable) uint64 {
	if depth == 0 {
		return 1
	}
	cached := tt != nil && depth <= MaxCachedDepth
	if cached {
		if count, ok := tt.Lookup(b.Occupancy(), depth); ok {
			return count
		}
	}

	var total uint64
	all := catalog.All()
	for i := range all {
		p := &all[i]
		for row := 0; row <= p.MaxRow; row++ {
			for col := 0; col <= p.MaxCol; col++ {
				mask := p.ShiftToUnsafe(row, col)
				if b.CanPlace(mask) {
					next := b
					next.PlaceAndClear(mask)
					total += CountTerminalNodes(next, depth-1, catalog, tt)
				}
			}
		}
	}
	if total == 0 {
		total = 1
	}
	if cached {
		tt.Store(b.Occupancy(), depth, total)
	}
	return total
}

// CountTerminalNodesConcurrent distributes the first-ply branches over
// workers. Each first-ply subtree is independent, so every worker carries its
// own memo table; per-chunk sums are combined atomically. The result is
// always identical to the sequential count.
func CountTerminalNodesConcurrent(b board.Board, depth int, catalog *pieces.Catalog, threads int) uint64 {
	if depth == 0 {
		return 1
	}
	if threads < 1 {
		threads = 1
	}

	var firstPly []movegen.Move
	for i := 0; i < catalog.Len(); i++ {
		firstPly = movegen.AppendPlacements(firstPly, b, catalog, i, -1)
	}
	if len(firstPly) == 0 {
		return 1
	}

	var total atomic.Uint64
	g := errgroup.Group{}
	chunk := (len(firstPly) + threads - 1) / threads
	for start := 0; start < len(firstPly); start += chunk {
		end := min(start+chunk, len(firstPly))
		moves := firstPly[start:end]
		g.Go(func() error {
			tt := NewTranspositionTable()
			var sum uint64
			for _, m := range moves {
				next := b
				next.PlaceAndClear(m.Mask)
				sum += CountTerminalNodes(next, depth-1, catalog, tt)
			}
			total.Add(sum)
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()
	return total.Load()
}

// PresetBoard returns the starting board for a named perft mode. Unknown
// modes are a user error, reported, not panicked.
func PresetBoard(mode string) (board.Board, error) {
	switch mode {
	case "default":
		return board.Empty(), nil
	case "nearfull":
		return board.NearFull(), nil
	}
	return board.Board{}, fmt.Errorf("unknown perft mode %q (want default or nearfull)", mode)
}

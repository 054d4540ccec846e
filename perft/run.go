package perft

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/blockfall/blockfall/pieces"
)

// Run executes the full perft sweep for depths 0 through maxDepth on the
// given mode's preset board, writing one result line per depth to w and
// checking each count against the recorded baselines. The shared memo table
// is cleared between depths; every depth is an independent search. Returns
// false if any depth disagreed with its baseline.
func Run(w io.Writer, mode string, maxDepth, threads int) (bool, error) {
	b, err := PresetBoard(mode)
	if err != nil {
		return false, err
	}
	if maxDepth < 0 {
		return false, fmt.Errorf("max depth must be non-negative, got %d", maxDepth)
	}
	catalog := pieces.Standard()
	tt := NewTranspositionTable()

	allPassed := true
	for d := 0; d <= maxDepth; d++ {
		start := time.Now()
		var count uint64
		if threads > 1 {
			count = CountTerminalNodesConcurrent(b, d, catalog, threads)
		} else {
			count = CountTerminalNodes(b, d, catalog, tt)
		}
		elapsed := time.Since(start)

		verdict := "NEW"
		if expected, ok := BaselineFor(mode, d); ok {
			if count == expected {
				verdict = "PASS"
			} else {
				verdict = fmt.Sprintf("FAIL (expected %d)", expected)
				allPassed = false
			}
		}
		fmt.Fprintf(w, "Depth %d: %12d nodes (%.3fs) [%s]\n",
			d, count, elapsed.Seconds(), verdict)
		log.Debug().
			Int("depth", d).
			Uint64("nodes", count).
			Dur("elapsed", elapsed).
			Str("mode", mode).
			Msg("perft-depth-complete")
		if threads <= 1 {
			tt.LogStats()
			tt.Clear()
		}
	}
	return allPassed, nil
}

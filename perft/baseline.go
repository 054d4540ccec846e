package perft

import "fmt"

// Known-good terminal-node counts, used as a regression baseline. Keyed by
// "<mode>:<depth>". Depths beyond these are reported as NEW rather than
// judged.
var baselines = map[string]uint64{
	"default:0": 1,
	"default:1": 1421,
	"default:2": 1617196,
	"default:3": 1455574952,

	"nearfull:0": 1,
	"nearfull:1": 76,
	"nearfull:2": 4380,
	"nearfull:3": 507036,
	"nearfull:4": 142586120,
}

// BaselineFor returns the expected count for a mode/depth pair, if one is
// recorded.
func BaselineFor(mode string, depth int) (uint64, bool) {
	count, ok := baselines[fmt.Sprintf("%s:%d", mode, depth)]
	return count, ok
}

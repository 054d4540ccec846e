package automatic

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
)

// SeriesStats summarizes final scores over a series of games.
type SeriesStats struct {
	Games  int
	Min    float64
	P10    float64
	P25    float64
	Median float64
	P75    float64
	P90    float64
	Max    float64
	Mean   float64
	StdDev float64

	scores []float64 // sorted
}

// ComputeStats builds score statistics from a series of results.
func ComputeStats(results []GameResult) SeriesStats {
	stats := SeriesStats{Games: len(results)}
	if len(results) == 0 {
		return stats
	}
	scores := lo.Map(results, func(r GameResult, _ int) float64 {
		return float64(r.Score)
	})
	sort.Float64s(scores)
	stats.scores = scores

	n := len(scores)
	stats.Min = scores[0]
	stats.Max = scores[n-1]
	stats.P10 = percentile(scores, 10)
	stats.P25 = percentile(scores, 25)
	stats.Median = percentile(scores, 50)
	stats.P75 = percentile(scores, 75)
	stats.P90 = percentile(scores, 90)

	stats.Mean = lo.Sum(scores) / float64(n)
	sqSum := 0.0
	for _, s := range scores {
		diff := s - stats.Mean
		sqSum += diff * diff
	}
	stats.StdDev = math.Sqrt(sqSum / float64(n))
	return stats
}

// percentile interpolates linearly between the two nearest ranks of a sorted
// slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	idx := (p / 100) * float64(len(sorted)-1)
	lower := int(idx)
	upper := lower + 1
	frac := idx - float64(lower)
	if upper >= len(sorted) {
		return sorted[lower]
	}
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// WriteTo writes a plain-text summary table.
func (s SeriesStats) WriteTo(w io.Writer) {
	fmt.Fprintf(w, "Games:       %d\n", s.Games)
	fmt.Fprintf(w, "P0   (min):  %10.2f\n", s.Min)
	fmt.Fprintf(w, "P10:         %10.2f\n", s.P10)
	fmt.Fprintf(w, "P25:         %10.2f\n", s.P25)
	fmt.Fprintf(w, "P50  (med):  %10.2f\n", s.Median)
	fmt.Fprintf(w, "P75:         %10.2f\n", s.P75)
	fmt.Fprintf(w, "P90:         %10.2f\n", s.P90)
	fmt.Fprintf(w, "P100 (max):  %10.2f\n", s.Max)
	fmt.Fprintf(w, "Mean:        %10.2f\n", s.Mean)
	fmt.Fprintf(w, "Std Dev:     %10.2f\n", s.StdDev)
}

// WriteHistogram renders an ASCII histogram of the score distribution.
func (s SeriesStats) WriteHistogram(w io.Writer, bins int) error {
	if len(s.scores) == 0 {
		return nil
	}
	hist := histogram.Hist(bins, s.scores)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

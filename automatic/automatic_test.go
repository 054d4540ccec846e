package automatic

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/blockfall/blockfall/pieces"
)

var catalog = pieces.Standard()

func randomRunner() *GameRunner {
	return NewGameRunner(catalog, func(gameSeed uint64) Strategy {
		key := make([]byte, 32)
		binary.LittleEndian.PutUint64(key, gameSeed^0x9E3779B97F4A7C15)
		return NewRandomStrategy(frand.NewCustom(key, 1024, 12))
	})
}

func TestPlayGameReachesTerminal(t *testing.T) {
	r := randomRunner()
	res := r.PlayGame(1)
	assert.Greater(t, res.Turns, 0)
	assert.GreaterOrEqual(t, res.Score, 0)
}

func TestPlayGameReproducible(t *testing.T) {
	r := randomRunner()
	first := r.PlayGame(99)
	second := r.PlayGame(99)
	assert.Equal(t, first, second)
}

func TestRunSeriesReproducibleAcrossThreadCounts(t *testing.T) {
	r := randomRunner()
	sequential := r.RunSeries(12, 1, 1000)
	parallel := r.RunSeries(12, 4, 1000)
	assert.Equal(t, sequential, parallel)
}

func TestGreedyStrategyPrefersClears(t *testing.T) {
	r := NewGameRunner(catalog, func(uint64) Strategy { return GreedyStrategy{} })
	res := r.PlayGame(7)
	assert.Greater(t, res.Turns, 0)
}

func TestComputeStats(t *testing.T) {
	results := []GameResult{
		{Score: 0}, {Score: 8}, {Score: 16}, {Score: 24}, {Score: 32},
	}
	stats := ComputeStats(results)
	assert.Equal(t, 5, stats.Games)
	assert.Equal(t, 0.0, stats.Min)
	assert.Equal(t, 32.0, stats.Max)
	assert.Equal(t, 16.0, stats.Median)
	assert.Equal(t, 16.0, stats.Mean)
	assert.InDelta(t, 11.3137, stats.StdDev, 0.001)
	// Linear interpolation between ranks.
	assert.InDelta(t, 3.2, stats.P10, 0.001)
	assert.InDelta(t, 8.0, stats.P25, 0.001)
	assert.InDelta(t, 28.8, stats.P90, 0.001)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, 0, stats.Games)
}

func TestSeriesStatsOrdering(t *testing.T) {
	r := randomRunner()
	results := r.RunSeries(30, 2, 500)
	require.Len(t, results, 30)
	stats := ComputeStats(results)
	assert.LessOrEqual(t, stats.Min, stats.P25)
	assert.LessOrEqual(t, stats.P25, stats.Median)
	assert.LessOrEqual(t, stats.Median, stats.P75)
	assert.LessOrEqual(t, stats.P75, stats.Max)

	var buf bytes.Buffer
	stats.WriteTo(&buf)
	assert.Contains(t, buf.String(), "Games:       30")
	buf.Reset()
	require.NoError(t, stats.WriteHistogram(&buf, 8))
	assert.NotEmpty(t, buf.String())
}

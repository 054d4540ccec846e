package automatic

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/blockfall/blockfall/game"
	"github.com/blockfall/blockfall/pieces"
)

// safety bound; a session that draws this many hands without dying is a bug.
const maxTurnsPerGame = 1 << 20

// A GameResult is the outcome of one completed session.
type GameResult struct {
	Score int
	Turns int
}

// A GameRunner plays full sessions with a fixed strategy constructor. Each
// game gets its own seeded session so series are reproducible.
type GameRunner struct {
	catalog     *pieces.Catalog
	newStrategy func(gameSeed uint64) Strategy
}

// NewGameRunner creates a runner. newStrategy is invoked once per game with
// that game's seed, so stateful strategies (e.g. random) stay reproducible
// per game.
func NewGameRunner(catalog *pieces.Catalog, newStrategy func(gameSeed uint64) Strategy) *GameRunner {
	return &GameRunner{catalog: catalog, newStrategy: newStrategy}
}

// PlayGame plays one session to its terminal state and returns the result.
func (r *GameRunner) PlayGame(seed uint64) GameResult {
	g := game.NewGameWithSeed(r.catalog, seed)
	strat := r.newStrategy(seed)
	for !g.GameOver() {
		if g.Turn() > maxTurnsPerGame {
			log.Error().Uint64("seed", seed).Msg("runaway game, aborting playout")
			break
		}
		m, ok := strat.SelectMove(g)
		if !ok {
			break
		}
		g.PlayMove(m)
	}
	return GameResult{Score: g.Score(), Turns: g.Turn()}
}

// RunSeries plays numGames sessions across the given number of worker
// goroutines and returns every result. Game i is seeded with baseSeed+i, so
// a series is reproducible regardless of thread count or scheduling.
func (r *GameRunner) RunSeries(numGames, threads int, baseSeed uint64) []GameResult {
	if threads < 1 {
		threads = 1
	}
	log.Debug().Int("games", numGames).Int("threads", threads).Msg("starting series")

	jobs := make(chan uint64, threads)
	results := make([]GameResult, numGames)
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results[seed-baseSeed] = r.PlayGame(seed)
			}
		}()
	}
	for i := 0; i < numGames; i++ {
		jobs <- baseSeed + uint64(i)
		if numGames >= 10 && (i+1)%(numGames/10) == 0 {
			log.Debug().Msgf("queued %v/%v games", i+1, numGames)
		}
	}
	close(jobs)
	wg.Wait()
	return results
}

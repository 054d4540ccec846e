package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/blockfall/blockfall/automatic"
	"github.com/blockfall/blockfall/config"
	"github.com/blockfall/blockfall/pieces"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad arguments")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad arguments")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = frand.Uint64n(1 << 62)
	}

	catalog := pieces.Standard()
	runner := automatic.NewGameRunner(catalog, func(gameSeed uint64) automatic.Strategy {
		if cfg.Strategy == "greedy" {
			return automatic.GreedyStrategy{}
		}
		key := make([]byte, 32)
		binary.LittleEndian.PutUint64(key, gameSeed^0x9E3779B97F4A7C15)
		return automatic.NewRandomStrategy(frand.NewCustom(key, 1024, 12))
	})

	fmt.Printf("Running %d games with %s strategy (seed %d)...\n",
		cfg.Games, cfg.Strategy, seed)
	start := time.Now()
	results := runner.RunSeries(cfg.Games, cfg.Threads, seed)
	elapsed := time.Since(start)

	stats := automatic.ComputeStats(results)
	fmt.Printf("\nTime: %v (%.1f games/sec)\n\n", elapsed.Round(time.Millisecond),
		float64(cfg.Games)/elapsed.Seconds())
	stats.WriteTo(os.Stdout)
	fmt.Println()
	if err := stats.WriteHistogram(os.Stdout, 10); err != nil {
		log.Error().Err(err).Msg("could not render histogram")
	}
}

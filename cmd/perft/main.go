package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/blockfall/blockfall/config"
	"github.com/blockfall/blockfall/perft"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad arguments")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad arguments")
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	log.Logger = log.Output(output)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	fmt.Printf("Running Perft (Terminal Node Count)\n")
	fmt.Printf("  Max Depth: %d\n", cfg.Depth)
	fmt.Printf("  Mode:      %s\n\n", cfg.Mode)

	passed, err := perft.Run(os.Stdout, cfg.Mode, cfg.Depth, cfg.Threads)
	if err != nil {
		log.Fatal().Err(err).Msg("perft failed")
	}
	if !passed {
		os.Exit(1)
	}
}

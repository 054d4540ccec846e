// Package config holds the flag-driven settings shared by the command-line
// binaries.
package config

import (
	"fmt"

	"github.com/namsral/flag"
)

type Config struct {
	// Perft settings.
	Depth   int
	Mode    string
	Threads int

	// Simulation settings.
	Games    int
	Seed     uint64
	Strategy string

	Debug bool
}

// Load parses args into the config. Invalid or non-numeric values are a
// reported user error from the flag set, never a crash.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("blockfall", flag.ContinueOnError)
	fs.IntVar(&c.Depth, "depth", 2, "maximum search depth for perft")
	fs.StringVar(&c.Mode, "mode", "default", "board preset: default or nearfull")
	fs.IntVar(&c.Threads, "threads", 1, "worker goroutines for perft/simulations")
	fs.IntVar(&c.Games, "games", 1000, "number of games to simulate")
	fs.Uint64Var(&c.Seed, "seed", 0, "base RNG seed; 0 picks a random seed")
	fs.StringVar(&c.Strategy, "strategy", "random", "playout strategy: random or greedy")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	return fs.Parse(args)
}

// Validate rejects settings no component can act on.
func (c *Config) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("depth must be non-negative, got %d", c.Depth)
	}
	if c.Mode != "default" && c.Mode != "nearfull" {
		return fmt.Errorf("unknown mode %q (want default or nearfull)", c.Mode)
	}
	if c.Threads < 1 {
		return fmt.Errorf("threads must be positive, got %d", c.Threads)
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Strategy != "random" && c.Strategy != "greedy" {
		return fmt.Errorf("unknown strategy %q (want random or greedy)", c.Strategy)
	}
	return nil
}

package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/blockfall/blockfall/pieces"
	"github.com/blockfall/blockfall/shell"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	sc := shell.NewShellController(pieces.Standard())
	sc.Loop()
}

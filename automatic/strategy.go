// Package automatic plays out full game sessions without a human, to
// evaluate strategies and collect score statistics over many runs.
package automatic

import (
	"lukechampine.com/frand"

	"github.com/blockfall/blockfall/game"
	"github.com/blockfall/blockfall/movegen"
)

// A Strategy selects the next move for a running game. It consumes the
// core's move generation and read accessors only; its policy is not part of
// the engine's invariants.
type Strategy interface {
	Name() string
	// SelectMove returns the move to play, or ok=false when the game has no
	// legal moves left.
	SelectMove(g *game.Game) (m movegen.Move, ok bool)
}

// RandomStrategy picks uniformly among all legal moves.
type RandomStrategy struct {
	rng *frand.RNG
}

func NewRandomStrategy(rng *frand.RNG) *RandomStrategy {
	return &RandomStrategy{rng: rng}
}

func (s *RandomStrategy) Name() string { return "random" }

func (s *RandomStrategy) SelectMove(g *game.Game) (movegen.Move, bool) {
	moves := g.AllLegalMoves()
	if len(moves) == 0 {
		return movegen.Move{}, false
	}
	return moves[s.rng.Intn(len(moves))], true
}

// GreedyStrategy plays the move with the highest immediate clear score,
// breaking ties by enumeration order.
type GreedyStrategy struct{}

func (s GreedyStrategy) Name() string { return "greedy" }

func (s GreedyStrategy) SelectMove(g *game.Game) (movegen.Move, bool) {
	moves := g.AllLegalMoves()
	if len(moves) == 0 {
		return movegen.Move{}, false
	}
	best := moves[0]
	bestPoints := -1
	for _, m := range moves {
		b := g.Board()
		lines := b.PlaceAndClear(m.Mask)
		if points := game.CalculateClearScore(lines); points > bestPoints {
			best = m
			bestPoints = points
		}
	}
	return best, true
}

// Package game implements one interactive session of the block puzzle: a
// board, a three-slot hand of pieces drawn at random, score and turn
// bookkeeping, and terminal-state detection. A session is a plain owned
// value; it has no internal synchronization and is not meant to be mutated
// by more than one caller.
package game

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/blockfall/blockfall/board"
	"github.com/blockfall/blockfall/movegen"
	"github.com/blockfall/blockfall/pieces"
)

// HandSize is the number of piece slots refilled together each turn.
const HandSize = 3

// A Game is a session state machine with two states, active and terminal.
// Terminal is absorbing: once no unused hand slot has a legal placement, no
// further placements are accepted until Reset.
type Game struct {
	catalog *pieces.Catalog
	board   board.Board

	hand     [HandSize]int
	handUsed [HandSize]bool
	score    int
	turn     int
	gameOver bool

	rng *frand.RNG
}

// NewGame creates a session with a nondeterministically seeded RNG and draws
// the first hand.
func NewGame(catalog *pieces.Catalog) *Game {
	g := &Game{catalog: catalog, rng: frand.New()}
	g.drawHand()
	return g
}

// NewGameWithSeed creates a reproducible session: two sessions constructed
// with the same catalog and seed draw identical hand sequences.
func NewGameWithSeed(catalog *pieces.Catalog, seed uint64) *Game {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	g := &Game{catalog: catalog, rng: frand.NewCustom(key, 1024, 12)}
	g.drawHand()
	return g
}

// Reset restores the initial state and draws a fresh hand. The session comes
// back active unless the freshly drawn hand is itself unplayable, which on an
// empty board cannot happen with the standard catalog.
func (g *Game) Reset() {
	g.board.Clear()
	g.score = 0
	g.turn = 0
	g.gameOver = false
	for i := range g.handUsed {
		g.handUsed[i] = false
	}
	g.drawHand()
}

// drawHand samples HandSize piece types uniformly, with replacement across
// the whole catalog, resets the used flags, increments the turn counter, and
// re-runs terminal detection.
func (g *Game) drawHand() {
	for i := 0; i < HandSize; i++ {
		g.hand[i] = g.rng.Intn(g.catalog.Len())
		g.handUsed[i] = false
	}
	g.turn++
	g.checkGameOver()
}

// CanPlace reports whether the piece in the given hand slot can be placed
// with its bounding-box top-left at (row, col).
func (g *Game) CanPlace(handIndex, row, col int) bool {
	if handIndex < 0 || handIndex >= HandSize || g.handUsed[handIndex] {
		return false
	}
	p := g.catalog.Piece(g.hand[handIndex])
	mask := p.ShiftTo(row, col)
	if mask == 0 {
		return false
	}
	return g.board.CanPlace(mask)
}

// LegalMoves returns every legal placement for the given hand slot, tagged
// with the hand index. Empty if the slot is out of range or already used.
func (g *Game) LegalMoves(handIndex int) []movegen.Move {
	if handIndex < 0 || handIndex >= HandSize || g.handUsed[handIndex] {
		return nil
	}
	return movegen.AppendPlacements(nil, g.board, g.catalog, g.hand[handIndex], handIndex)
}

// AllLegalMoves returns the legal placements for every unused hand slot.
func (g *Game) AllLegalMoves() []movegen.Move {
	var moves []movegen.Move
	for i := 0; i < HandSize; i++ {
		if !g.handUsed[i] {
			moves = movegen.AppendPlacements(moves, g.board, g.catalog, g.hand[i], i)
		}
	}
	return moves
}

// HasLegalMoves reports whether any unused hand slot has at least one legal
// placement. It short-circuits on the first hit.
func (g *Game) HasLegalMoves() bool {
	for i := 0; i < HandSize; i++ {
		if !g.handUsed[i] && movegen.HasPlacement(g.board, g.catalog.Piece(g.hand[i])) {
			return true
		}
	}
	return false
}

// PlaceAt places the piece in the given hand slot at (row, col) and returns
// the points scored. Any illegal request, including one made after the
// session is terminal, is a no-op returning 0; the session state is
// untouched and remains inspectable.
func (g *Game) PlaceAt(handIndex, row, col int) int {
	if g.gameOver || !g.CanPlace(handIndex, row, col) {
		return 0
	}
	p := g.catalog.Piece(g.hand[handIndex])
	mask := p.ShiftTo(row, col)

	lines := g.board.PlaceAndClear(mask)
	points := CalculateClearScore(lines)
	g.score += points
	g.handUsed[handIndex] = true

	if g.allUsed() {
		// Drawing re-runs terminal detection.
		g.drawHand()
	} else {
		g.checkGameOver()
	}
	return points
}

// PlayMove is PlaceAt addressed by a generated Move's hand index and anchor.
func (g *Game) PlayMove(m movegen.Move) int {
	return g.PlaceAt(m.HandIndex, m.Row, m.Col)
}

func (g *Game) allUsed() bool {
	for i := 0; i < HandSize; i++ {
		if !g.handUsed[i] {
			return false
		}
	}
	return true
}

func (g *Game) checkGameOver() {
	if !g.HasLegalMoves() {
		g.gameOver = true
	}
}

// CalculateClearScore returns the points awarded for clearing n lines with a
// single placement: 8*n^2. The quadratic bonus rewards simultaneous
// multi-line clears far beyond sequential single clears.
func CalculateClearScore(n int) int {
	return n * n * 8
}

// Board returns a copy of the current board.
func (g *Game) Board() board.Board {
	return g.board
}

func (g *Game) Score() int {
	return g.score
}

// Turn returns the turn counter; it increments exactly once per hand refill.
func (g *Game) Turn() int {
	return g.turn
}

func (g *Game) GameOver() bool {
	return g.gameOver
}

// Hand returns a copy of the hand's piece type indexes.
func (g *Game) Hand() [HandSize]int {
	return g.hand
}

// HandUsed returns a copy of the per-slot used flags.
func (g *Game) HandUsed() [HandSize]bool {
	return g.handUsed
}

// Catalog returns the shared read-only catalog this session draws from.
func (g *Game) Catalog() *pieces.Catalog {
	return g.catalog
}

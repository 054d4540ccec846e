// Package movegen enumerates legal placements of a piece on a board. All
// enumeration is in deterministic row-major order (anchor row, then column),
// bounded by the piece's precomputed MaxRow/MaxCol, so the out-of-bounds case
// never arises in these loops.
package movegen

import (
	"fmt"

	"github.com/blockfall/blockfall/board"
	"github.com/blockfall/blockfall/pieces"
)

// A Move is one concrete placement: a piece anchored at (Row, Col) with its
// precomputed board mask. HandIndex is -1 unless the move was generated for a
// specific game-hand slot. Moves are transient values; they are produced by
// enumeration and consumed immediately.
type Move struct {
	Piece     int
	HandIndex int
	Row       int
	Col       int
	Mask      uint64
}

func (m Move) ShortDescription() string {
	return fmt.Sprintf("piece %d at (%d,%d)", m.Piece, m.Row, m.Col)
}

// ForEachPlacement calls fn for every legal placement of p on b, in row-major
// anchor order. If fn returns false, enumeration stops early.
func ForEachPlacement(b board.Board, p *pieces.Piece, fn func(row, col int, mask uint64) bool) {
	for row := 0; row <= p.MaxRow; row++ {
		for col := 0; col <= p.MaxCol; col++ {
			mask := p.ShiftToUnsafe(row, col)
			if b.CanPlace(mask) {
				if !fn(row, col, mask) {
					return
				}
			}
		}
	}
}

// AppendPlacements appends every legal placement of catalog piece pieceIdx on
// b to moves, tagged with handIndex, and returns the extended slice.
func AppendPlacements(moves []Move, b board.Board, c *pieces.Catalog, pieceIdx, handIndex int) []Move {
	ForEachPlacement(b, c.Piece(pieceIdx), func(row, col int, mask uint64) bool {
		moves = append(moves, Move{
			Piece:     pieceIdx,
			HandIndex: handIndex,
			Row:       row,
			Col:       col,
			Mask:      mask,
		})
		return true
	})
	return moves
}

// CountPlacements returns the number of legal placements of p on b.
func CountPlacements(b board.Board, p *pieces.Piece) int {
	count := 0
	for row := 0; row <= p.MaxRow; row++ {
		for col := 0; col <= p.MaxCol; col++ {
			if b.CanPlace(p.ShiftToUnsafe(row, col)) {
				count++
			}
		}
	}
	return count
}

// HasPlacement returns true iff p has at least one legal placement on b. It
// short-circuits on the first hit; game-over checks and search pruning sit on
// this path.
func HasPlacement(b board.Board, p *pieces.Piece) bool {
	for row := 0; row <= p.MaxRow; row++ {
		for col := 0; col <= p.MaxCol; col++ {
			if b.CanPlace(p.ShiftToUnsafe(row, col)) {
				return true
			}
		}
	}
	return false
}

// Package pieces defines the fixed shape catalog and each shape's precomputed
// placement table. Shapes are parsed once from textual patterns at catalog
// construction and never mutated afterwards.
package pieces

import (
	"strings"

	"github.com/blockfall/blockfall/board"
)

// A Piece is one shape: its occupancy pattern within its bounding box, the
// bounding box dimensions, and a 64-entry table of the shape's board mask for
// every anchor position. The anchor is the bounding box's top-left cell.
//
// Anchors whose bounding box would extend past the board edge hold a zero
// mask. A valid shape mask is never zero, so zero doubles as the
// out-of-bounds sentinel. MaxRow and MaxCol bound the valid anchor range
// directly, so hot loops never take the out-of-bounds branch at all.
type Piece struct {
	BaseMask uint64
	Width    int
	Height   int
	MaxRow   int
	MaxCol   int
	Name     string

	table [64]uint64
}

// newPiece parses a pattern string and builds the placement table. Patterns
// use 'X' for filled, '.' for empty, and '|' between rows, e.g. "XX|XX" for
// the 2x2 square. Building the table is O(64*height), done once per shape.
func newPiece(pattern, name string) Piece {
	p := Piece{Name: name}
	rows := strings.Split(pattern, "|")
	p.Height = len(rows)
	for r, rowStr := range rows {
		if len(rowStr) > p.Width {
			p.Width = len(rowStr)
		}
		for c, ch := range rowStr {
			if ch == 'X' {
				p.BaseMask |= 1 << uint(r*board.Dim+c)
			}
		}
	}
	p.MaxRow = board.Dim - p.Height
	p.MaxCol = board.Dim - p.Width
	for row := 0; row <= p.MaxRow; row++ {
		for col := 0; col <= p.MaxCol; col++ {
			var mask uint64
			for r := 0; r < p.Height; r++ {
				rowBits := (p.BaseMask >> uint(r*board.Dim)) & board.RowMask
				mask |= rowBits << uint((row+r)*board.Dim+col)
			}
			p.table[row*board.Dim+col] = mask
		}
	}
	return p
}

// ShiftTo returns the piece's board mask anchored at (row, col), or zero if
// any filled cell would fall outside the board.
func (p *Piece) ShiftTo(row, col int) uint64 {
	if row < 0 || col < 0 || row > p.MaxRow || col > p.MaxCol {
		return 0
	}
	return p.table[row*board.Dim+col]
}

// ShiftToUnsafe is the raw table read for hot loops. Callers must keep the
// anchor within [0, MaxRow] x [0, MaxCol].
func (p *Piece) ShiftToUnsafe(row, col int) uint64 {
	return p.table[row*board.Dim+col]
}

// Cells returns the number of filled cells in the shape.
func (p *Piece) Cells() int {
	n := 0
	for m := p.BaseMask; m != 0; m &= m - 1 {
		n++
	}
	return n
}

// String renders the shape's bounding box, one line per row.
func (p *Piece) String() string {
	var sb strings.Builder
	for r := 0; r < p.Height; r++ {
		for c := 0; c < p.Width; c++ {
			if p.BaseMask&(1<<uint(r*board.Dim+c)) != 0 {
				sb.WriteString("█ ")
			} else {
				sb.WriteString("  ")
			}
		}
		if r < p.Height-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

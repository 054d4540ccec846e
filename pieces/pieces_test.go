package pieces

import (
	"testing"

	"github.com/matryer/is"

	"github.com/blockfall/blockfall/board"
)

func TestStandardCatalogSize(t *testing.T) {
	is := is.New(t)
	c := Standard()
	is.Equal(c.Len(), NumPieces)
	is.Equal(NumPieces, 34)
}

func TestPieceDimensions(t *testing.T) {
	is := is.New(t)
	c := Standard()

	cases := []struct {
		idx           int
		width, height int
		cells         int
	}{
		{Square2x2, 2, 2, 4},
		{Square3x3, 3, 3, 9},
		{Rect2x3, 2, 3, 6},
		{Rect3x2, 3, 2, 6},
		{Line3x1, 3, 1, 3},
		{Line5x1, 5, 1, 5},
		{Line1x5, 1, 5, 5},
		{S0, 3, 2, 4},
		{S90, 2, 3, 4},
		{T0, 3, 2, 4},
		{SmallCorner0, 2, 2, 3},
		{LargeCorner0, 3, 3, 5},
		{L0, 2, 3, 4},
		{J270, 3, 2, 4},
	}
	for _, tc := range cases {
		p := c.Piece(tc.idx)
		is.Equal(p.Width, tc.width)
		is.Equal(p.Height, tc.height)
		is.Equal(p.Cells(), tc.cells)
		is.Equal(p.MaxRow, board.Dim-tc.height)
		is.Equal(p.MaxCol, board.Dim-tc.width)
		is.True(p.BaseMask != 0)
	}
}

func TestBaseMasks(t *testing.T) {
	is := is.New(t)
	c := Standard()

	// 2x2 square: bits (0,0),(0,1),(1,0),(1,1).
	is.Equal(c.Piece(Square2x2).BaseMask, uint64(0x303))
	// 5x1 horizontal line: bits 0..4.
	is.Equal(c.Piece(Line5x1).BaseMask, uint64(0x1F))
	// 1x5 vertical line: bit 0 of rows 0..4.
	is.Equal(c.Piece(Line1x5).BaseMask, uint64(0x0101010101))
	// S0 ".XX|XX.": row 0 bits 1,2; row 1 bits 0,1.
	is.Equal(c.Piece(S0).BaseMask, uint64(0x6|0x3<<8))
}

// shiftReference recomputes a shape mask at an anchor by shifting the base
// pattern row by row, mirroring the table-construction contract.
func shiftReference(p *Piece, row, col int) uint64 {
	if row < 0 || col < 0 || row+p.Height > board.Dim || col+p.Width > board.Dim {
		return 0
	}
	var mask uint64
	for r := 0; r < p.Height; r++ {
		rowBits := (p.BaseMask >> uint(r*board.Dim)) & board.RowMask
		mask |= rowBits << uint((row+r)*board.Dim+col)
	}
	return mask
}

func TestShiftTableMatchesReference(t *testing.T) {
	is := is.New(t)
	c := Standard()
	for i := 0; i < c.Len(); i++ {
		p := c.Piece(i)
		for row := -1; row <= board.Dim; row++ {
			for col := -1; col <= board.Dim; col++ {
				is.Equal(p.ShiftTo(row, col), shiftReference(p, row, col))
			}
		}
	}
}

func TestShiftTableSentinel(t *testing.T) {
	is := is.New(t)
	c := Standard()
	for i := 0; i < c.Len(); i++ {
		p := c.Piece(i)
		for row := 0; row <= p.MaxRow; row++ {
			for col := 0; col <= p.MaxCol; col++ {
				// In-range masks are never zero...
				is.True(p.ShiftToUnsafe(row, col) != 0)
			}
		}
		// ...and out-of-range anchors return the zero sentinel.
		is.Equal(p.ShiftTo(p.MaxRow+1, 0), uint64(0))
		is.Equal(p.ShiftTo(0, p.MaxCol+1), uint64(0))
		is.Equal(p.ShiftTo(-1, 0), uint64(0))
		is.Equal(p.ShiftTo(0, -1), uint64(0))
	}
}

func TestShiftedMaskStaysOnBoard(t *testing.T) {
	is := is.New(t)
	c := Standard()
	p := c.Piece(Square3x3)
	// Bottom-right-most anchor of the 3x3 square.
	mask := p.ShiftTo(5, 5)
	is.True(mask != 0)
	var want uint64
	for rr := 5; rr < 8; rr++ {
		for cc := 5; cc < 8; cc++ {
			want |= 1 << uint(rr*board.Dim+cc)
		}
	}
	is.Equal(mask, want)
}

func TestPieceString(t *testing.T) {
	is := is.New(t)
	c := Standard()
	s := c.Piece(SmallCorner0).String()
	is.Equal(s, "█ █ \n█   ")
}

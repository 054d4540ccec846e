// Package board implements the 8x8 grid as a single 64-bit occupancy bitmask.
// Bit layout: row i, column j maps to bit (i*8 + j), so bit 0 is the top-left
// cell and bit 63 the bottom-right.
package board

import "math/bits"

const (
	// Dim is the board dimension; the board is always Dim x Dim.
	Dim = 8

	// RowMask covers row 0; shift left by 8*row for other rows.
	RowMask uint64 = 0xFF
	// ColMask covers column 0; shift left by col for other columns.
	ColMask uint64 = 0x0101010101010101
	// FullBoard has every cell occupied.
	FullBoard uint64 = 0xFFFFFFFFFFFFFFFF
)

// A Board is the occupancy state of the grid. The zero value is an empty
// board. It is a small value type; copy it freely.
type Board struct {
	data uint64
}

// MakeBoard creates a board with the given occupancy bits.
func MakeBoard(data uint64) Board {
	return Board{data: data}
}

func bitAt(row, col int) uint64 {
	return 1 << uint(row*Dim+col)
}

// MaskForRow returns the full-width mask for the given row.
func MaskForRow(row int) uint64 {
	return RowMask << uint(row*Dim)
}

// MaskForCol returns the full-height mask for the given column.
func MaskForCol(col int) uint64 {
	return ColMask << uint(col)
}

// Occupancy returns the raw 64-bit occupancy value. It is the board's
// identity; two boards are the same position iff their occupancies are equal.
func (b Board) Occupancy() uint64 {
	return b.data
}

func (b Board) IsEmpty() bool {
	return b.data == 0
}

func (b Board) IsFull() bool {
	return b.data == FullBoard
}

// CellsOccupied returns the number of occupied cells.
func (b Board) CellsOccupied() int {
	return bits.OnesCount64(b.data)
}

// IsOccupied tests a single cell. Callers pass row, col in 0..7.
func (b Board) IsOccupied(row, col int) bool {
	return b.data&bitAt(row, col) != 0
}

// SetOccupied fills a single cell.
func (b *Board) SetOccupied(row, col int) {
	b.data |= bitAt(row, col)
}

// ClearSquare empties a single cell.
func (b *Board) ClearSquare(row, col int) {
	b.data &^= bitAt(row, col)
}

// CanPlace returns true iff none of the mask's cells are already occupied.
func (b Board) CanPlace(mask uint64) bool {
	return b.data&mask == 0
}

// Place fills every cell in the mask. It does not clear lines; callers that
// want the scored, atomic operation use PlaceAndClear.
func (b *Board) Place(mask uint64) {
	b.data |= mask
}

// FullRows returns an 8-bit set with bit r set iff row r is fully occupied.
func (b Board) FullRows() uint8 {
	var full uint8
	for r := 0; r < Dim; r++ {
		m := MaskForRow(r)
		if b.data&m == m {
			full |= 1 << uint(r)
		}
	}
	return full
}

// FullCols returns an 8-bit set with bit c set iff column c is fully occupied.
func (b Board) FullCols() uint8 {
	var full uint8
	for c := 0; c < Dim; c++ {
		m := MaskForCol(c)
		if b.data&m == m {
			full |= 1 << uint(c)
		}
	}
	return full
}

// ClearFullLines removes every currently-full row and column and returns the
// number of lines cleared. Rows and columns are counted independently, so a
// row and column crossing at a shared cell count as 2. Fullness is evaluated
// against the occupancy as it was when the call started; the union of all
// full lines is then removed in a single mask subtraction, so clearing one
// line can never un-fill another that was full at entry.
func (b *Board) ClearFullLines() int {
	fullRows := b.FullRows()
	fullCols := b.FullCols()
	if fullRows == 0 && fullCols == 0 {
		return 0
	}

	var clearMask uint64
	for r := 0; r < Dim; r++ {
		if fullRows&(1<<uint(r)) != 0 {
			clearMask |= MaskForRow(r)
		}
	}
	for c := 0; c < Dim; c++ {
		if fullCols&(1<<uint(c)) != 0 {
			clearMask |= MaskForCol(c)
		}
	}
	b.data &^= clearMask
	return bits.OnesCount8(fullRows) + bits.OnesCount8(fullCols)
}

// PlaceAndClear places the mask, then clears any lines it completed, as one
// operation. Returns the number of lines cleared. This is the only mutating
// entry point a caller needs for a scored move.
func (b *Board) PlaceAndClear(mask uint64) int {
	b.Place(mask)
	return b.ClearFullLines()
}

// Clear empties the whole board.
func (b *Board) Clear() {
	b.data = 0
}

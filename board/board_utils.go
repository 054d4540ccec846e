package board

import (
	"fmt"
	"strings"
)

// ToDisplayText returns a human-readable rendering of the board, with row and
// column coordinates. Display only; nothing parses it back.
func (b Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < Dim; c++ {
		fmt.Fprintf(&sb, "%d ", c)
	}
	sb.WriteString("\n")
	for r := 0; r < Dim; r++ {
		fmt.Fprintf(&sb, "%d ", r)
		for c := 0; c < Dim; c++ {
			if b.IsOccupied(r, c) {
				sb.WriteString("█ ")
			} else {
				sb.WriteString("· ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Empty returns an empty board.
func Empty() Board {
	return Board{}
}

// NearFull returns a board with the 6x6 interior (rows 1-6, cols 1-6) filled,
// leaving only the border ring open. Used as a perft preset to exercise
// heavily constrained positions.
func NearFull() Board {
	var b Board
	for r := 1; r <= 6; r++ {
		for c := 1; c <= 6; c++ {
			b.SetOccupied(r, c)
		}
	}
	return b
}

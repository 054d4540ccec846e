package pieces

// Piece type indexes into the standard catalog.
const (
	Square2x2 = iota
	Square3x3
	Rect2x3
	Rect3x2
	Line3x1
	Line4x1
	Line5x1
	Line1x3
	Line1x4
	Line1x5
	S0
	S90
	S180
	S270
	T0
	T90
	T180
	T270
	SmallCorner0
	SmallCorner90
	SmallCorner180
	SmallCorner270
	LargeCorner0
	LargeCorner90
	LargeCorner180
	LargeCorner270
	L0
	L90
	L180
	L270
	J0
	J90
	J180
	J270
	NumPieces
)

type pieceDef struct {
	pattern string
	name    string
}

var standardDefs = [NumPieces]pieceDef{
	Square2x2: {"XX|XX", "2x2 Square"},
	Square3x3: {"XXX|XXX|XXX", "3x3 Square"},

	Rect2x3: {"XX|XX|XX", "2x3 Rectangle"},
	Rect3x2: {"XXX|XXX", "3x2 Rectangle"},

	Line3x1: {"XXX", "3x1 Line"},
	Line4x1: {"XXXX", "4x1 Line"},
	Line5x1: {"XXXXX", "5x1 Line"},
	Line1x3: {"X|X|X", "1x3 Line"},
	Line1x4: {"X|X|X|X", "1x4 Line"},
	Line1x5: {"X|X|X|X|X", "1x5 Line"},

	S0:   {".XX|XX.", "S piece 0°"},
	S90:  {"X.|XX|.X", "S piece 90°"},
	S180: {"XX.|.XX", "S piece 180°"},
	S270: {".X|XX|X.", "S piece 270°"},

	T0:   {"XXX|.X.", "T piece 0°"},
	T90:  {"X.|XX|X.", "T piece 90°"},
	T180: {".X.|XXX", "T piece 180°"},
	T270: {".X|XX|.X", "T piece 270°"},

	SmallCorner0:   {"XX|X.", "Small Corner 0°"},
	SmallCorner90:  {"XX|.X", "Small Corner 90°"},
	SmallCorner180: {".X|XX", "Small Corner 180°"},
	SmallCorner270: {"X.|XX", "Small Corner 270°"},

	LargeCorner0:   {"XXX|X..|X..", "Large Corner 0°"},
	LargeCorner90:  {"XXX|..X|..X", "Large Corner 90°"},
	LargeCorner180: {"..X|..X|XXX", "Large Corner 180°"},
	LargeCorner270: {"X..|X..|XXX", "Large Corner 270°"},

	L0:   {"X.|X.|XX", "L piece 0°"},
	L90:  {"XXX|X..", "L piece 90°"},
	L180: {"XX|.X|.X", "L piece 180°"},
	L270: {"..X|XXX", "L piece 270°"},

	J0:   {".X|.X|XX", "J piece 0°"},
	J90:  {"X..|XXX", "J piece 90°"},
	J180: {"XX|X.|X.", "J piece 180°"},
	J270: {"XXX|..X", "J piece 270°"},
}

// A Catalog is an immutable set of pieces, built once and shared read-only by
// every component that needs shape lookups.
type Catalog struct {
	pieces []Piece
}

// Standard builds the standard 33-shape catalog.
func Standard() *Catalog {
	c := &Catalog{pieces: make([]Piece, NumPieces)}
	for i, def := range standardDefs {
		c.pieces[i] = newPiece(def.pattern, def.name)
	}
	return c
}

// Len returns the number of pieces in the catalog.
func (c *Catalog) Len() int {
	return len(c.pieces)
}

// Piece returns the piece at the given index. The returned pointer is into
// the catalog's backing array; callers must treat it as read-only.
func (c *Catalog) Piece(idx int) *Piece {
	return &c.pieces[idx]
}

// All returns the catalog's pieces, read-only by convention.
func (c *Catalog) All() []Piece {
	return c.pieces
}

package game

// NumPieces is the number of distinct pieces each player starts with.
const NumPieces = 21

// PieceID indexes the canonical piece catalog, 0 through 20.
type PieceID int

// NoPiece marks an empty selection.
const NoPiece PieceID = -1

// Valid reports whether id refers to a catalog entry.
func (id PieceID) Valid() bool {
	return id >= 0 && id < NumPieces
}

func (id PieceID) String() string {
	if !id.Valid() {
		return "none"
	}
	return pieceNames[id]
}

var pieceNames = [NumPieces]string{
	"Dot", "Line2", "Line3", "L3", "Line4", "L4", "Zig-Zag", "Square", "Tee",
	"Line5", "L5", "Extended Zig", "Extended Tee", "U", "Notch Square",
	"Big Tee", "Big L5", "Stairs", "Wide Zig", "Chair", "Plus",
}

// PieceShapes is the canonical catalog. Every footprint is authored centered
// on the frame so that cell (2,2) is always occupied; the transforms and the
// anchor-recentering logic rely on that.
var PieceShapes = [NumPieces]Shape{
	// Dot - 0
	shapeOf(
		".....",
		".....",
		"..#..",
		".....",
		".....",
	),
	// Line2 - 1
	shapeOf(
		".....",
		"..#..",
		"..#..",
		".....",
		".....",
	),
	// Line3 - 2
	shapeOf(
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	),
	// L3 - 3
	shapeOf(
		".....",
		"..#..",
		"..##.",
		".....",
		".....",
	),
	// Line4 - 4
	shapeOf(
		".....",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	),
	// L4 - 5
	shapeOf(
		".....",
		"..#..",
		"..#..",
		"..##.",
		".....",
	),
	// Zig-Zag - 6
	shapeOf(
		".....",
		".##..",
		"..##.",
		".....",
		".....",
	),
	// Square - 7
	shapeOf(
		".....",
		"..##.",
		"..##.",
		".....",
		".....",
	),
	// Tee - 8
	shapeOf(
		".....",
		"..#..",
		"..##.",
		"..#..",
		".....",
	),
	// Line5 - 9
	shapeOf(
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	),
	// L5 - 10
	shapeOf(
		"..#..",
		"..#..",
		"..#..",
		"..##.",
		".....",
	),
	// Extended Zig - 11
	shapeOf(
		".....",
		"..#..",
		"..#..",
		"..##.",
		"...#.",
	),
	// Extended Tee - 12
	shapeOf(
		".....",
		"..#..",
		"..##.",
		"..#..",
		"..#..",
	),
	// U - 13
	shapeOf(
		".....",
		".....",
		".###.",
		".#.#.",
		".....",
	),
	// Notch Square - 14
	shapeOf(
		".....",
		".....",
		".###.",
		".##..",
		".....",
	),
	// Big Tee - 15
	shapeOf(
		".....",
		".#...",
		".###.",
		".#...",
		".....",
	),
	// Big L5 - 16
	shapeOf(
		"..#..",
		"..#..",
		"..###",
		".....",
		".....",
	),
	// Stairs - 17
	shapeOf(
		".....",
		".##..",
		"..##.",
		"...#.",
		".....",
	),
	// Wide Zig - 18
	shapeOf(
		".....",
		".#...",
		".###.",
		"...#.",
		".....",
	),
	// Chair - 19
	shapeOf(
		".....",
		".#...",
		".###.",
		"..#..",
		".....",
	),
	// Plus - 20
	shapeOf(
		".....",
		"..#..",
		".###.",
		"..#..",
		".....",
	),
}

func shapeOf(rows ...string) Shape {
	var s Shape
	for r, row := range rows {
		for c, ch := range row {
			s[r][c] = ch == '#'
		}
	}
	return s
}

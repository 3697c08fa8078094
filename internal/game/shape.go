package game

// ShapeSize is the side length of the square frame every piece fits in.
const ShapeSize = 5

// Shape is one piece in one orientation, as a 5x5 occupancy grid. Shapes are
// value types: transforms return new values and never mutate in place.
type Shape [ShapeSize][ShapeSize]bool

// EmptyShape is the shape with no occupied cells. It doubles as the piece
// buffer value when nothing is selected.
var EmptyShape Shape

type RotateDir int

const (
	RotateRight RotateDir = iota
	RotateLeft
)

type FlipDir int

const (
	FlipHorizontal FlipDir = iota
	FlipVertical
)

// Rotate returns s turned a quarter turn in the given direction.
func Rotate(s Shape, dir RotateDir) Shape {
	if dir == RotateLeft {
		return Flip(transpose(s), FlipVertical)
	}
	return transpose(Flip(s, FlipVertical))
}

// Flip mirrors s across the given axis: FlipVertical reverses row order,
// FlipHorizontal reverses column order within each row.
func Flip(s Shape, dir FlipDir) Shape {
	var out Shape
	for r := 0; r < ShapeSize; r++ {
		for c := 0; c < ShapeSize; c++ {
			if dir == FlipVertical {
				out[r][c] = s[ShapeSize-1-r][c]
			} else {
				out[r][c] = s[r][ShapeSize-1-c]
			}
		}
	}
	return out
}

func transpose(s Shape) Shape {
	var out Shape
	for r := 0; r < ShapeSize; r++ {
		for c := 0; c < ShapeSize; c++ {
			out[c][r] = s[r][c]
		}
	}
	return out
}

// CellCount returns the number of occupied cells in s.
func (s Shape) CellCount() int {
	n := 0
	for r := 0; r < ShapeSize; r++ {
		for c := 0; c < ShapeSize; c++ {
			if s[r][c] {
				n++
			}
		}
	}
	return n
}

// CheckBoundsAndRecenter translates an anchor coordinate in play-area space
// (the anchor is treated as the shape's frame center, cell (2,2)) into the
// play-area coordinate of the shape's local (0,0) cell. It reports false when
// any occupied cell would land outside the 20x20 play area.
func CheckBoundsAndRecenter(s Shape, row, col int) (int, int, bool) {
	// Extents of the occupied bounding box relative to the frame center.
	var top, bottom, left, right int
	for r := 0; r < ShapeSize; r++ {
		for c := 0; c < ShapeSize; c++ {
			if !s[r][c] {
				continue
			}
			dr, dc := r-2, c-2
			if dr < top {
				top = dr
			} else if dr > bottom {
				bottom = dr
			}
			if dc < left {
				left = dc
			} else if dc > right {
				right = dc
			}
		}
	}

	if row+top < 0 || row+bottom >= PlayArea || col+left < 0 || col+right >= PlayArea {
		return 0, 0, false
	}
	return row - 2, col - 2, true
}

package game

// ValidMove reports whether shape, placed with its local (0,0) cell at the
// wall-inclusive board coordinates (adjRow, adjCol), is a legal move for
// color. Three rules apply:
//
//  1. every occupied cell must land on an empty tile,
//  2. no occupied cell may sit orthogonally next to a tile of color,
//  3. at least one occupied cell must touch a tile of color diagonally.
//
// Rules 1 and 2 fail fast per cell; rule 3 is aggregated over the whole
// shape. The caller guarantees the footprint is already inside the play area,
// so the one-cell wall ring keeps every neighbor probe in bounds.
func ValidMove(b *Board, shape Shape, adjRow, adjCol int, color TileColor) bool {
	anyDiagonal := false
	for r := 0; r < ShapeSize; r++ {
		for c := 0; c < ShapeSize; c++ {
			if !shape[r][c] {
				continue
			}
			row, col := adjRow+r, adjCol+c

			if b.Cells[row][col] != TileEmpty {
				return false
			}

			if b.Cells[row-1][col] == color || b.Cells[row+1][col] == color ||
				b.Cells[row][col-1] == color || b.Cells[row][col+1] == color {
				return false
			}

			if !anyDiagonal {
				anyDiagonal = b.Cells[row-1][col-1] == color || b.Cells[row-1][col+1] == color ||
					b.Cells[row+1][col-1] == color || b.Cells[row+1][col+1] == color
			}
		}
	}
	return anyDiagonal
}

package game

import "strings"

const (
	// PlayArea is the side length of the playable region.
	PlayArea = 20
	// BoardSpan includes the one-cell wall ring on every side.
	BoardSpan = PlayArea + 2
)

// TileColor denotes possible tile colors. Also used to denote player colors.
type TileColor int

const (
	TileEmpty TileColor = iota
	TileRed
	TileYellow
	TileGreen
	TileBlue
	TileWall
)

// DefaultColorOrder is the order colors are handed out when seats fill up.
var DefaultColorOrder = []TileColor{TileRed, TileBlue, TileYellow, TileGreen}

func (t TileColor) String() string {
	switch t {
	case TileRed:
		return "R"
	case TileYellow:
		return "Y"
	case TileGreen:
		return "G"
	case TileBlue:
		return "B"
	case TileWall:
		return "#"
	default:
		return "."
	}
}

// Name returns the lowercase color name used in configs and API payloads.
func (t TileColor) Name() string {
	switch t {
	case TileRed:
		return "red"
	case TileYellow:
		return "yellow"
	case TileGreen:
		return "green"
	case TileBlue:
		return "blue"
	case TileWall:
		return "wall"
	default:
		return "empty"
	}
}

// ColorByName is the inverse of Name for player colors only.
func ColorByName(name string) (TileColor, bool) {
	switch name {
	case "red":
		return TileRed, true
	case "yellow":
		return TileYellow, true
	case "green":
		return TileGreen, true
	case "blue":
		return TileBlue, true
	}
	return TileEmpty, false
}

// Board is the fixed 22x22 tile grid: the 20x20 play area plus a wall ring.
// The ring never changes after construction except for the seed corners, and
// interior cells only ever transition from empty to a color.
type Board struct {
	Cells [BoardSpan][BoardSpan]TileColor `json:"cells"`
}

// seedCornersFor picks the pre-colored starting corners for n players, in
// seat order. Two-player games use diagonally opposite corners; three and
// four players go around the board counter-clockwise from bottom-right.
func seedCornersFor(n int) [][2]int {
	const max = BoardSpan - 1
	if n <= 2 {
		return [][2]int{{max, max}, {0, 0}}
	}
	return [][2]int{{max, max}, {max, 0}, {0, 0}, {0, max}}
}

// NewBoard builds a walled board with one seed corner per color, in seat
// order. The seeds live in the wall ring and are never rendered; they exist
// so each player's opening move has a diagonal of its own color to touch.
func NewBoard(colors []TileColor) Board {
	var b Board
	for i := 0; i < BoardSpan; i++ {
		b.Cells[0][i] = TileWall
		b.Cells[BoardSpan-1][i] = TileWall
		b.Cells[i][0] = TileWall
		b.Cells[i][BoardSpan-1] = TileWall
	}

	corners := seedCornersFor(len(colors))
	for i, color := range colors {
		if i >= len(corners) {
			break
		}
		b.Cells[corners[i][0]][corners[i][1]] = color
	}
	return b
}

// At returns the tile at play-area coordinates, 0 <= row, col < PlayArea.
func (b *Board) At(row, col int) TileColor {
	return b.Cells[row+1][col+1]
}

// String renders the full grid one row per line, walls and seeds included.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < BoardSpan; r++ {
		for c := 0; c < BoardSpan; c++ {
			sb.WriteString(b.Cells[r][c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

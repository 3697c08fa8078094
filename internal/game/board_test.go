package game

import "testing"

func TestNewBoardSetup(t *testing.T) {
	tests := []struct {
		name   string
		colors []TileColor
		seeds  map[[2]int]TileColor
	}{
		{
			name:   "two players on diagonal corners",
			colors: []TileColor{TileRed, TileBlue},
			seeds: map[[2]int]TileColor{
				{21, 21}: TileRed,
				{0, 0}:   TileBlue,
			},
		},
		{
			name:   "three players",
			colors: []TileColor{TileRed, TileBlue, TileYellow},
			seeds: map[[2]int]TileColor{
				{21, 21}: TileRed,
				{21, 0}:  TileBlue,
				{0, 0}:   TileYellow,
			},
		},
		{
			name:   "four players on all corners",
			colors: []TileColor{TileRed, TileBlue, TileYellow, TileGreen},
			seeds: map[[2]int]TileColor{
				{21, 21}: TileRed,
				{21, 0}:  TileBlue,
				{0, 0}:   TileYellow,
				{0, 21}:  TileGreen,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(tt.colors)

			for r := 0; r < BoardSpan; r++ {
				for c := 0; c < BoardSpan; c++ {
					got := b.Cells[r][c]
					if want, isSeed := tt.seeds[[2]int{r, c}]; isSeed {
						if got != want {
							t.Errorf("seed (%d,%d) = %v, want %v", r, c, got, want)
						}
						continue
					}
					onRing := r == 0 || r == BoardSpan-1 || c == 0 || c == BoardSpan-1
					if onRing && got != TileWall {
						t.Errorf("ring cell (%d,%d) = %v, want wall", r, c, got)
					}
					if !onRing && got != TileEmpty {
						t.Errorf("interior cell (%d,%d) = %v, want empty", r, c, got)
					}
				}
			}
		})
	}
}

func TestBoardAt(t *testing.T) {
	b := NewBoard([]TileColor{TileRed, TileBlue})
	b.Cells[1][1] = TileRed
	if got := b.At(0, 0); got != TileRed {
		t.Fatalf("At(0,0) = %v, want red", got)
	}
	if got := b.At(19, 19); got != TileEmpty {
		t.Fatalf("At(19,19) = %v, want empty", got)
	}
}

func TestColorNames(t *testing.T) {
	for _, c := range DefaultColorOrder {
		got, ok := ColorByName(c.Name())
		if !ok || got != c {
			t.Errorf("ColorByName(%q) = %v, %v", c.Name(), got, ok)
		}
	}
	if _, ok := ColorByName("mauve"); ok {
		t.Errorf("ColorByName accepted an unknown color")
	}
}

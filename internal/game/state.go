package game

import (
	"encoding/json"
	"math/bits"
)

// PieceSet tracks which catalog pieces a player still holds, as a bitmask
// over piece ids. Ids are removed as pieces are placed, never re-added.
type PieceSet uint32

// FullPieceSet holds all 21 catalog pieces.
func FullPieceSet() PieceSet {
	return PieceSet(1<<NumPieces - 1)
}

func (s PieceSet) Has(id PieceID) bool {
	return id.Valid() && s&(1<<uint(id)) != 0
}

func (s *PieceSet) Remove(id PieceID) {
	if id.Valid() {
		*s &^= 1 << uint(id)
	}
}

func (s PieceSet) Empty() bool {
	return s == 0
}

func (s PieceSet) Count() int {
	return bits.OnesCount32(uint32(s))
}

// IDs returns the held piece ids in ascending order.
func (s PieceSet) IDs() []PieceID {
	ids := make([]PieceID, 0, s.Count())
	for id := PieceID(0); id < NumPieces; id++ {
		if s.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// MarshalJSON encodes the set as a sorted id list for API payloads.
func (s PieceSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

func (s *PieceSet) UnmarshalJSON(data []byte) error {
	var ids []PieceID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = 0
	for _, id := range ids {
		if id.Valid() {
			*s |= 1 << uint(id)
		}
	}
	return nil
}

// Player holds one seat's color and remaining piece inventory.
type Player struct {
	Color     TileColor `json:"color"`
	Remaining PieceSet  `json:"remaining"`
}

// NewPlayer constructs a player with this color and all pieces in hand.
func NewPlayer(color TileColor) Player {
	return Player{Color: color, Remaining: FullPieceSet()}
}

// SquaresLeft is the total cell count of the player's unplaced pieces. Lower
// is better at the end of the game.
func (p *Player) SquaresLeft() int {
	n := 0
	for _, id := range p.Remaining.IDs() {
		n += PieceShapes[id].CellCount()
	}
	return n
}

// GameState is the authoritative state of one game. It is not safe for
// concurrent mutation; the caller serializes access per game instance.
type GameState struct {
	Board   Board    `json:"board"`
	Players []Player `json:"players"`
	// Current indexes Players cyclically.
	Current int `json:"current"`
	// Selected is the piece id being placed, or NoPiece.
	Selected PieceID `json:"selected"`
	// Buffer is the selected piece's live orientation. It equals EmptyShape
	// exactly when Selected is NoPiece.
	Buffer Shape `json:"buffer"`
	// PassCount counts consecutive passes; the game ends when it reaches
	// the player count.
	PassCount int `json:"passCount"`
}

// NewGameState starts a fresh game with one seat per color, 2 to 4 seats,
// in the given turn order.
func NewGameState(colors []TileColor) *GameState {
	players := make([]Player, len(colors))
	for i, c := range colors {
		players[i] = NewPlayer(c)
	}
	return &GameState{
		Board:    NewBoard(colors),
		Players:  players,
		Selected: NoPiece,
	}
}

func (g *GameState) CurrentPlayer() *Player {
	return &g.Players[g.Current]
}

// SelectPiece sets the selection and resets the buffer to the piece's
// canonical orientation, discarding any in-progress rotation or flip.
// Passing NoPiece clears the selection.
func (g *GameState) SelectPiece(id PieceID) {
	if !id.Valid() {
		g.Selected = NoPiece
		g.Buffer = EmptyShape
		return
	}
	g.Selected = id
	g.Buffer = PieceShapes[id]
}

// RotateBuffer turns the live piece buffer a quarter turn.
func (g *GameState) RotateBuffer(dir RotateDir) {
	g.Buffer = Rotate(g.Buffer, dir)
}

// FlipBuffer mirrors the live piece buffer across an axis.
func (g *GameState) FlipBuffer(dir FlipDir) {
	g.Buffer = Flip(g.Buffer, dir)
}

// TryPlacePiece writes the current player's piece buffer to the board,
// anchored at (row, col) in play-area coordinates. On success the placed
// piece leaves the player's inventory and the selection clears. On any
// failure nothing changes and the selection stays active so the player can
// retry elsewhere.
func (g *GameState) TryPlacePiece(row, col int) bool {
	if g.Selected == NoPiece {
		return false
	}

	adjRow, adjCol, ok := CheckBoundsAndRecenter(g.Buffer, row, col)
	if !ok {
		return false
	}

	player := g.CurrentPlayer()
	if !ValidMove(&g.Board, g.Buffer, adjRow+1, adjCol+1, player.Color) {
		return false
	}

	for r := 0; r < ShapeSize; r++ {
		for c := 0; c < ShapeSize; c++ {
			if g.Buffer[r][c] {
				g.Board.Cells[adjRow+r+1][adjCol+c+1] = player.Color
			}
		}
	}

	player.Remaining.Remove(g.Selected)
	g.Selected = NoPiece
	g.Buffer = EmptyShape
	return true
}

// TryAdvanceTurn attempts to finish the current player's turn by placing
// their selected piece at (row, col). If the piece cannot be placed, no
// state change occurs and the turn does not advance.
func (g *GameState) TryAdvanceTurn(row, col int) bool {
	if !g.TryPlacePiece(row, col) {
		return false
	}
	g.PassCount = 0
	g.EndTurn()
	return true
}

// EndTurn advances to the next seat without touching the board. Forced
// passes use this directly.
func (g *GameState) EndTurn() {
	g.Current = (g.Current + 1) % len(g.Players)
}

// Pass records a forced pass for the current player and advances the turn.
func (g *GameState) Pass() {
	g.PassCount++
	g.Selected = NoPiece
	g.Buffer = EmptyShape
	g.EndTurn()
}

// CanMakeMove reports whether the current player has any legal placement
// left. It probes every remaining piece in all eight orientations against
// every play-area anchor, reusing throwaway shape values so the live piece
// buffer is untouched. Every catalog footprint occupies its frame center in
// every orientation, so anchoring on each play-area cell covers all
// placements.
func (g *GameState) CanMakeMove() bool {
	player := g.CurrentPlayer()
	for _, id := range player.Remaining.IDs() {
		buf := PieceShapes[id]
		for f := 0; f < 2; f++ {
			buf = Flip(buf, FlipVertical)
			for rot := 0; rot < 4; rot++ {
				buf = Rotate(buf, RotateRight)
				for row := 0; row < PlayArea; row++ {
					for col := 0; col < PlayArea; col++ {
						adjRow, adjCol, ok := CheckBoundsAndRecenter(buf, row, col)
						if !ok {
							continue
						}
						if ValidMove(&g.Board, buf, adjRow+1, adjCol+1, player.Color) {
							return true
						}
					}
				}
			}
		}
	}
	return false
}

// IsGameOver reports whether the game has ended: the current player placed
// everything, or every seat passed in a row.
func (g *GameState) IsGameOver() bool {
	return g.CurrentPlayer().Remaining.Empty() || g.PassCount == len(g.Players)
}

package room

import (
	"sync"
	"testing"

	"github.com/AiredaleDev/blorus/internal/config"
	"github.com/AiredaleDev/blorus/internal/game"
	"github.com/AiredaleDev/blorus/internal/shared"
	"github.com/AiredaleDev/blorus/internal/store"
)

type recordingHub struct {
	events []string
}

func (h *recordingHub) Broadcast(roomCode, action string, data interface{}) {
	h.events = append(h.events, action)
}

func (h *recordingHub) saw(action string) bool {
	for _, e := range h.events {
		if e == action {
			return true
		}
	}
	return false
}

func newTestManager() (*Manager, *recordingHub) {
	hub := &recordingHub{}
	cfg := config.Config{
		MinPlayers: 2,
		MaxPlayers: 4,
		ColorOrder: game.DefaultColorOrder,
	}
	return NewManager(store.NewMemoryStore(), cfg, hub), hub
}

// startedRoom creates a room with n seated players and starts the game.
func startedRoom(t *testing.T, m *Manager, n int) *shared.Room {
	t.Helper()
	r := m.CreateRoom("p0")
	for i := 1; i < n; i++ {
		if _, _, err := m.Join(r.Code, "p"+string(rune('0'+i))); err != nil {
			t.Fatalf("join %d: %v", i, err)
		}
	}
	if _, err := m.Start(r.Code); err != nil {
		t.Fatalf("start: %v", err)
	}
	return r
}

func TestCreateAndJoin(t *testing.T) {
	m, hub := newTestManager()
	r := m.CreateRoom("alice")

	if r.Status != shared.StatusLobby {
		t.Fatalf("new room status = %q", r.Status)
	}
	if len(r.Players) != 1 || r.Players[0].Color != game.TileRed {
		t.Fatalf("creator not seated first with red")
	}

	for i, want := range []game.TileColor{game.TileBlue, game.TileYellow, game.TileGreen} {
		_, p, err := m.Join(r.Code, "joiner")
		if err != nil {
			t.Fatalf("join %d: %v", i, err)
		}
		if p.Seat != i+1 || p.Color != want {
			t.Fatalf("join %d: seat %d color %v, want seat %d color %v", i, p.Seat, p.Color, i+1, want)
		}
	}

	if _, _, err := m.Join(r.Code, "late"); err != ErrRoomFull {
		t.Fatalf("fifth join err = %v, want ErrRoomFull", err)
	}
	if !hub.saw("player-joined") {
		t.Fatalf("no player-joined broadcast")
	}
}

func TestJoinUnknownRoom(t *testing.T) {
	m, _ := newTestManager()
	if _, _, err := m.Join("NOPE42", "ghost"); err != ErrRoomNotFound {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}
}

func TestStartValidation(t *testing.T) {
	m, hub := newTestManager()
	r := m.CreateRoom("solo")

	if _, err := m.Start(r.Code); err != ErrNotEnoughPlayers {
		t.Fatalf("solo start err = %v, want ErrNotEnoughPlayers", err)
	}

	if _, _, err := m.Join(r.Code, "friend"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if _, err := m.Start(r.Code); err != nil {
		t.Fatalf("start: %v", err)
	}
	if r.Status != shared.StatusPlaying || r.Game == nil {
		t.Fatalf("room not playing after start")
	}
	if !hub.saw("game-started") {
		t.Fatalf("no game-started broadcast")
	}

	if _, err := m.Start(r.Code); err != ErrGameStarted {
		t.Fatalf("double start err = %v, want ErrGameStarted", err)
	}
	if _, _, err := m.Join(r.Code, "late"); err != ErrGameStarted {
		t.Fatalf("late join err = %v, want ErrGameStarted", err)
	}
}

func TestTurnFlow(t *testing.T) {
	m, hub := newTestManager()
	r := startedRoom(t, m, 2)
	first, second := r.Players[0], r.Players[1]

	// Acting out of turn is rejected at every operation.
	if err := m.SelectPiece(r, second.ID, 0); err != ErrNotYourTurn {
		t.Fatalf("out-of-turn select err = %v", err)
	}
	if err := m.Place(r, second.ID, 19, 19); err != ErrNotYourTurn {
		t.Fatalf("out-of-turn place err = %v", err)
	}

	// Placement and transforms need a selection.
	if err := m.Place(r, first.ID, 19, 19); err != ErrNoSelection {
		t.Fatalf("place without selection err = %v", err)
	}
	if err := m.Transform(r, first.ID, "rotate-left"); err != ErrNoSelection {
		t.Fatalf("transform without selection err = %v", err)
	}

	if err := m.SelectPiece(r, first.ID, 19); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := m.Transform(r, first.ID, "spin"); err != ErrUnknownTransform {
		t.Fatalf("unknown op err = %v", err)
	}
	if err := m.Transform(r, first.ID, "rotate-left"); err != nil {
		t.Fatalf("rotate: %v", err)
	}

	// An illegal anchor leaves the selection in place for a retry.
	if err := m.Place(r, first.ID, 10, 10); err != ErrIllegalPlacement {
		t.Fatalf("mid-board opening err = %v", err)
	}
	if r.Game.Selected != 19 {
		t.Fatalf("failed placement cleared the selection")
	}

	// Red's seed corner is bottom-right; the Dot is easiest to verify.
	if err := m.SelectPiece(r, first.ID, 0); err != nil {
		t.Fatalf("reselect: %v", err)
	}
	if err := m.Place(r, first.ID, 19, 19); err != nil {
		t.Fatalf("place: %v", err)
	}
	if got := r.Game.Board.At(19, 19); got != game.TileRed {
		t.Fatalf("corner = %v, want red", got)
	}
	if cp := r.CurrentPlayer(); cp == nil || cp.ID != second.ID {
		t.Fatalf("turn did not pass to the second player")
	}
	if !hub.saw("piece-placed") {
		t.Fatalf("no piece-placed broadcast")
	}

	// A piece placed once cannot be selected again.
	if err := m.SelectPiece(r, second.ID, 25); err != ErrPieceNotHeld {
		t.Fatalf("bogus id err = %v", err)
	}
}

func TestVoluntaryPass(t *testing.T) {
	m, hub := newTestManager()
	r := startedRoom(t, m, 2)

	if err := m.Pass(r, r.Players[0].ID); err != nil {
		t.Fatalf("pass: %v", err)
	}
	if r.Game.PassCount != 1 {
		t.Fatalf("pass count = %d", r.Game.PassCount)
	}
	if cp := r.CurrentPlayer(); cp.ID != r.Players[1].ID {
		t.Fatalf("pass did not advance the turn")
	}
	if !hub.saw("turn-passed") {
		t.Fatalf("no turn-passed broadcast")
	}

	// A full round of passes finishes the game.
	if err := m.Pass(r, r.Players[1].ID); err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if r.Status != shared.StatusFinished {
		t.Fatalf("status = %q after a full pass round", r.Status)
	}
	if !hub.saw("game-over") {
		t.Fatalf("no game-over broadcast")
	}

	// No further moves once finished.
	if err := m.Pass(r, r.Players[0].ID); err != ErrGameOver {
		t.Fatalf("post-game pass err = %v", err)
	}
}

func TestConcurrentCallersSerialized(t *testing.T) {
	m, _ := newTestManager()
	r := startedRoom(t, m, 2)

	// Both seats issue gameplay calls from separate goroutines, the way
	// simultaneous HTTP and websocket requests arrive. Out-of-turn and
	// post-game rejections are expected; the point is that the interleaving
	// leaves the room consistent. Run with the race detector enabled.
	var wg sync.WaitGroup
	for seat := 0; seat < 2; seat++ {
		wg.Add(1)
		go func(playerID string, piece game.PieceID) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = m.SelectPiece(r, playerID, piece)
				_ = m.Place(r, playerID, 19, 19)
				_ = m.Pass(r, playerID)
				m.Rank(r)
			}
		}(r.Players[seat].ID, game.PieceID(seat))
	}
	wg.Wait()

	g := r.Game
	if g.Current < 0 || g.Current >= len(g.Players) {
		t.Fatalf("current seat out of range: %d", g.Current)
	}
	if g.PassCount < 0 || g.PassCount > len(g.Players) {
		t.Fatalf("pass count out of range: %d", g.PassCount)
	}
	if r.Status != shared.StatusPlaying && r.Status != shared.StatusFinished {
		t.Fatalf("unexpected status %q", r.Status)
	}
}

func TestRankOrdersByFewestSquares(t *testing.T) {
	m, _ := newTestManager()
	r := startedRoom(t, m, 3)

	// Give seat 2 the emptier hand.
	r.Game.Players[2].Remaining.Remove(9)  // Line5, 5 squares
	r.Game.Players[2].Remaining.Remove(20) // Plus, 5 squares
	r.Game.Players[1].Remaining.Remove(0)  // Dot, 1 square

	rank := m.Rank(r)
	if rank[0].PlayerID != r.Players[2].ID {
		t.Fatalf("rank[0] = %s, want seat 2", rank[0].Name)
	}
	if rank[1].PlayerID != r.Players[1].ID {
		t.Fatalf("rank[1] = %s, want seat 1", rank[1].Name)
	}
	if rank[0].SquaresLeft != 79 || rank[1].SquaresLeft != 88 {
		t.Fatalf("squares left = %d, %d", rank[0].SquaresLeft, rank[1].SquaresLeft)
	}
}

func TestRandCode(t *testing.T) {
	code := randCode(6)
	if len(code) != 6 {
		t.Fatalf("len = %d", len(code))
	}
	for _, ch := range code {
		found := false
		for _, l := range letters {
			if ch == l {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("unexpected character %q", ch)
		}
	}
}

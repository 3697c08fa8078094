package room

import (
	"errors"
	"math/rand"
	"time"

	"github.com/AiredaleDev/blorus/internal/config"
	"github.com/AiredaleDev/blorus/internal/game"
	"github.com/AiredaleDev/blorus/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrGameStarted      = errors.New("game already started")
	ErrGameNotStarted   = errors.New("game not started")
	ErrGameOver         = errors.New("game is over")
	ErrRoomFull         = errors.New("room is full")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrPieceNotHeld     = errors.New("piece not in hand")
	ErrNoSelection      = errors.New("no piece selected")
	ErrIllegalPlacement = errors.New("illegal placement")
	ErrUnknownTransform = errors.New("unknown transform")
)

type Store interface {
	GetRoom(code string) (*shared.Room, bool)
	SaveRoom(r *shared.Room)
}

// Manager is the single mutation point for every room it holds. All engine
// calls for a given game funnel through it, and every mutating method holds
// the room's lock for the duration, which keeps the single-threaded core
// safe under concurrent HTTP and websocket callers.
type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	return &Manager{store: s, cfg: cfg, hub: hub}
}

func (m *Manager) CreateRoom(creatorName string) *shared.Room {
	r := &shared.Room{
		ID:        uuid.NewString(),
		Code:      randCode(6),
		Status:    shared.StatusLobby,
		CreatedAt: time.Now(),
		Players: []shared.Player{{
			ID:    uuid.NewString(),
			Name:  creatorName,
			Seat:  0,
			Color: m.cfg.ColorOrder[0],
		}},
	}
	m.store.SaveRoom(r)
	log.Infof("room %s created by %s", r.Code, creatorName)
	return r
}

func (m *Manager) Get(code string) (*shared.Room, bool) {
	return m.store.GetRoom(code)
}

// Join adds a player to a lobby, assigning the next seat and color in the
// configured turn order.
func (m *Manager) Join(code, name string) (*shared.Room, *shared.Player, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, nil, ErrRoomNotFound
	}
	r.Lock()
	defer r.Unlock()

	if r.Status != shared.StatusLobby {
		return nil, nil, ErrGameStarted
	}
	if len(r.Players) >= m.cfg.MaxPlayers {
		return nil, nil, ErrRoomFull
	}

	seat := len(r.Players)
	r.Players = append(r.Players, shared.Player{
		ID:    uuid.NewString(),
		Name:  name,
		Seat:  seat,
		Color: m.cfg.ColorOrder[seat],
	})
	m.store.SaveRoom(r)

	p := &r.Players[seat]
	m.hub.Broadcast(r.Code, "player-joined", gin.H{
		"player":  p,
		"players": r.Players,
	})
	return r, p, nil
}

// Start seeds the board and begins play in roster order.
func (m *Manager) Start(code string) (*shared.Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.Lock()
	defer r.Unlock()

	if r.Status != shared.StatusLobby {
		return nil, ErrGameStarted
	}
	if len(r.Players) < m.cfg.MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	colors := make([]game.TileColor, len(r.Players))
	for i, p := range r.Players {
		colors[i] = p.Color
	}
	r.Game = game.NewGameState(colors)
	r.Status = shared.StatusPlaying
	m.store.SaveRoom(r)

	log.Infof("room %s started with %d players", r.Code, len(r.Players))
	m.hub.Broadcast(r.Code, "game-started", gin.H{"room": r})
	return r, nil
}

// turnContext validates that the game is running and it is playerID's turn.
func (m *Manager) turnContext(r *shared.Room, playerID string) (*game.GameState, *shared.Player, error) {
	switch r.Status {
	case shared.StatusLobby:
		return nil, nil, ErrGameNotStarted
	case shared.StatusFinished:
		return nil, nil, ErrGameOver
	}
	cp := r.CurrentPlayer()
	if cp == nil || cp.ID != playerID {
		return nil, nil, ErrNotYourTurn
	}
	return r.Game, cp, nil
}

// SelectPiece picks a piece (or clears the selection with game.NoPiece),
// resetting the live buffer to the piece's canonical orientation.
func (m *Manager) SelectPiece(r *shared.Room, playerID string, id game.PieceID) error {
	r.Lock()
	defer r.Unlock()

	g, cp, err := m.turnContext(r, playerID)
	if err != nil {
		return err
	}
	if id != game.NoPiece && !g.CurrentPlayer().Remaining.Has(id) {
		return ErrPieceNotHeld
	}

	g.SelectPiece(id)
	m.store.SaveRoom(r)
	m.hub.Broadcast(r.Code, "piece-selected", gin.H{
		"playerId": cp.ID,
		"piece":    g.Selected,
		"buffer":   g.Buffer,
	})
	return nil
}

// Transform re-orients the live piece buffer. Recognized ops: rotate-left,
// rotate-right, flip-horizontal, flip-vertical.
func (m *Manager) Transform(r *shared.Room, playerID, op string) error {
	r.Lock()
	defer r.Unlock()

	g, cp, err := m.turnContext(r, playerID)
	if err != nil {
		return err
	}
	if g.Selected == game.NoPiece {
		return ErrNoSelection
	}

	switch op {
	case "rotate-left":
		g.RotateBuffer(game.RotateLeft)
	case "rotate-right":
		g.RotateBuffer(game.RotateRight)
	case "flip-horizontal":
		g.FlipBuffer(game.FlipHorizontal)
	case "flip-vertical":
		g.FlipBuffer(game.FlipVertical)
	default:
		return ErrUnknownTransform
	}

	m.store.SaveRoom(r)
	m.hub.Broadcast(r.Code, "piece-transformed", gin.H{
		"playerId": cp.ID,
		"op":       op,
		"buffer":   g.Buffer,
	})
	return nil
}

// Place attempts to commit the current player's buffered piece at the given
// play-area anchor. On success the turn advances and any following players
// left without a legal move are passed automatically.
func (m *Manager) Place(r *shared.Room, playerID string, row, col int) error {
	r.Lock()
	defer r.Unlock()

	g, cp, err := m.turnContext(r, playerID)
	if err != nil {
		return err
	}
	if g.Selected == game.NoPiece {
		return ErrNoSelection
	}

	placed := g.Selected
	if !g.TryAdvanceTurn(row, col) {
		log.Debugf("room %s: %s failed to place %v at (%d,%d)", r.Code, cp.Name, placed, row, col)
		return ErrIllegalPlacement
	}

	m.hub.Broadcast(r.Code, "piece-placed", gin.H{
		"playerId": cp.ID,
		"piece":    placed,
		"row":      row,
		"col":      col,
		"board":    g.Board,
		"nextTurn": r.Players[g.Current].ID,
	})

	m.settle(r)
	m.store.SaveRoom(r)
	return nil
}

// Pass skips the current player's turn, counting toward game over. The HTTP
// layer exposes this for session-level deadlines; stuck players are passed
// automatically after every placement anyway.
func (m *Manager) Pass(r *shared.Room, playerID string) error {
	r.Lock()
	defer r.Unlock()

	g, cp, err := m.turnContext(r, playerID)
	if err != nil {
		return err
	}

	g.Pass()
	m.hub.Broadcast(r.Code, "turn-passed", gin.H{
		"playerId":  cp.ID,
		"passCount": g.PassCount,
		"nextTurn":  r.Players[g.Current].ID,
	})

	m.settle(r)
	m.store.SaveRoom(r)
	return nil
}

// settle advances past every seat with no legal move and finishes the game
// once it ends, by exhaustion or a full round of passes.
func (m *Manager) settle(r *shared.Room) {
	g := r.Game
	for !g.IsGameOver() && !g.CanMakeMove() {
		stuck := r.Players[g.Current]
		g.Pass()
		log.Infof("room %s: %s has no legal move, passing", r.Code, stuck.Name)
		m.hub.Broadcast(r.Code, "turn-passed", gin.H{
			"playerId":  stuck.ID,
			"passCount": g.PassCount,
			"nextTurn":  r.Players[g.Current].ID,
		})
	}

	if g.IsGameOver() {
		r.Status = shared.StatusFinished
		log.Infof("room %s: game over", r.Code)
		m.hub.Broadcast(r.Code, "game-over", gin.H{"rank": m.rank(r)})
	}
}

type RankRow struct {
	PlayerID    string         `json:"playerId"`
	Name        string         `json:"name"`
	Color       game.TileColor `json:"color"`
	SquaresLeft int            `json:"squaresLeft"`
	PiecesLeft  int            `json:"piecesLeft"`
}

// Rank orders players by fewest squares left unplaced, ties broken by fewest
// pieces left.
func (m *Manager) Rank(r *shared.Room) []RankRow {
	r.Lock()
	defer r.Unlock()
	return m.rank(r)
}

// rank is Rank without the room lock, for callers already holding it.
func (m *Manager) rank(r *shared.Room) []RankRow {
	out := make([]RankRow, 0, len(r.Players))
	for i, p := range r.Players {
		row := RankRow{PlayerID: p.ID, Name: p.Name, Color: p.Color}
		if r.Game != nil {
			gp := &r.Game.Players[i]
			row.SquaresLeft = gp.SquaresLeft()
			row.PiecesLeft = gp.Remaining.Count()
		}
		out = append(out, row)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].SquaresLeft < out[i].SquaresLeft ||
				(out[j].SquaresLeft == out[i].SquaresLeft && out[j].PiecesLeft < out[i].PiecesLeft) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

package shared

import (
	"sync"
	"time"

	"github.com/AiredaleDev/blorus/internal/game"
)

const (
	StatusLobby    = "lobby"
	StatusPlaying  = "playing"
	StatusFinished = "finished"
)

type Room struct {
	mu sync.Mutex

	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Status    string          `json:"status"` // "lobby", "playing" or "finished"
	Players   []Player        `json:"players"`
	Game      *game.GameState `json:"game,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Seat is the player's index in turn order, assigned on join.
	Seat  int            `json:"seat"`
	Color game.TileColor `json:"color"`
}

// Lock serializes access to the room. The engine is single-threaded, so
// every caller touching the roster or game state holds this for the
// duration of the operation.
func (r *Room) Lock() {
	r.mu.Lock()
}

func (r *Room) Unlock() {
	r.mu.Unlock()
}

// CurrentPlayer returns the roster entry whose turn it is, or nil before the
// game starts.
func (r *Room) CurrentPlayer() *Player {
	if r.Game == nil || len(r.Players) == 0 {
		return nil
	}
	return &r.Players[r.Game.Current%len(r.Players)]
}

// PlayerByID looks a player up in the roster.
func (r *Room) PlayerByID(id string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

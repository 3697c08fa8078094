package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/AiredaleDev/blorus/internal/game"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Hub tracks the live connections per room and fans game events out to them.
type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]struct{}),
	}
}

// SetManager wires the room manager in after construction; the manager needs
// the hub for broadcasting, so the two are linked in two steps.
func (h *Hub) SetManager(rm RoomManager) {
	h.roomManager = rm
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Errorf("failed to upgrade connection: %v", err)
		return
	}

	log.Debugf("websocket connection established for room %s", roomCode)

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg struct {
			Action string          `json:"action"`
			Data   json.RawMessage `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Debugf("websocket read for room %s ended: %v", roomCode, err)
			break
		}
		h.handleAction(conn, roomCode, msg.Action, msg.Data)
	}
}

// handleAction dispatches one inbound client message. Every mutating action
// goes through the room manager, never straight to the engine.
func (h *Hub) handleAction(conn *websocket.Conn, roomCode, action string, data json.RawMessage) {
	r, ok := h.roomManager.Get(roomCode)
	if !ok {
		h.sendError(conn, "room not found")
		return
	}

	var err error
	switch action {
	case "select_piece":
		var req struct {
			PlayerID string       `json:"player_id"`
			Piece    game.PieceID `json:"piece"`
		}
		if err = json.Unmarshal(data, &req); err == nil {
			err = h.roomManager.SelectPiece(r, req.PlayerID, req.Piece)
		}
	case "transform":
		var req struct {
			PlayerID string `json:"player_id"`
			Op       string `json:"op"`
		}
		if err = json.Unmarshal(data, &req); err == nil {
			err = h.roomManager.Transform(r, req.PlayerID, req.Op)
		}
	case "place":
		var req struct {
			PlayerID string `json:"player_id"`
			Row      int    `json:"row"`
			Col      int    `json:"col"`
		}
		if err = json.Unmarshal(data, &req); err == nil {
			err = h.roomManager.Place(r, req.PlayerID, req.Row, req.Col)
		}
	case "pass":
		var req struct {
			PlayerID string `json:"player_id"`
		}
		if err = json.Unmarshal(data, &req); err == nil {
			err = h.roomManager.Pass(r, req.PlayerID)
		}
	default:
		log.Warnf("unknown websocket action %q in room %s", action, roomCode)
		return
	}

	if err != nil {
		log.Debugf("room %s: %s rejected: %v", roomCode, action, err)
		h.sendError(conn, err.Error())
	}
}

// sendError replies to one client. It holds the hub lock so the write never
// overlaps a Broadcast to the same connection; gorilla conns allow only one
// writer at a time.
func (h *Hub) sendError(conn *websocket.Conn, msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	_ = conn.WriteJSON(map[string]interface{}{
		"action": "error",
		"data":   map[string]string{"error": msg},
	})
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	// Write lock: failed sends evict their connection below.
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Warnf("failed to send message: %v", err)
			conn.Close()
			delete(clients, conn)
		}
	}
}

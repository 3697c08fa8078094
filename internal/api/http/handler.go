package http

import (
	"errors"
	"net/http"

	"github.com/AiredaleDev/blorus/internal/game"
	"github.com/AiredaleDev/blorus/internal/room"

	"github.com/gin-gonic/gin"
)

// statusFor maps manager errors onto HTTP status codes.
func statusFor(err error) int {
	if errors.Is(err, room.ErrRoomNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// @Summary Create new room
// @Description Create a new room with the creator seated first
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		rx := rm.CreateRoom(req.PlayerName)
		c.JSON(http.StatusOK, gin.H{
			"roomCode": rx.Code,
			"playerId": rx.Players[0].ID,
			"room":     rx,
		})
	}
}

// @Summary Join an existing room
// @Description Take the next free seat in a lobby; seat order is turn order
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.JoinRoomRequest true "Room and player info"
// @Success 200 {object} map[string]interface{}
// @Router /join-room [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerName required"})
			return
		}
		rx, p, err := rm.Join(req.RoomCode, req.PlayerName)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"playerId": p.ID, "seat": p.Seat, "room": rx})
	}
}

// @Summary Start the game
// @Description Seed the board and begin play in seat order
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.StartRequest true "Room info"
// @Success 200 {object} map[string]interface{}
// @Router /start [post]
func StartHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		rx, err := rm.Start(req.RoomCode)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx})
	}
}

// @Summary Get room state
// @Description Full room snapshot: roster, board, turn, selection, buffer
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /state [get]
func StateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx})
	}
}

// @Summary Get the piece catalog
// @Description Canonical shapes and names for all 21 pieces, indexed by id
// @Tags Game
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /pieces [get]
func PieceCatalogHandler() gin.HandlerFunc {
	type entry struct {
		ID    game.PieceID `json:"id"`
		Name  string       `json:"name"`
		Shape game.Shape   `json:"shape"`
		Cells int          `json:"cells"`
	}
	catalog := make([]entry, game.NumPieces)
	for id := game.PieceID(0); id < game.NumPieces; id++ {
		catalog[id] = entry{
			ID:    id,
			Name:  id.String(),
			Shape: game.PieceShapes[id],
			Cells: game.PieceShapes[id].CellCount(),
		}
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pieces": catalog})
	}
}

// @Summary Select a piece
// @Description Choose which piece to place; -1 clears the selection
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.SelectPieceRequest true "Selection"
// @Success 200 {object} map[string]interface{}
// @Router /select-piece [post]
func SelectPieceHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SelectPieceRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		if err := rm.SelectPiece(rx, req.PlayerID, req.Piece); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx})
	}
}

// @Summary Transform the selected piece
// @Description Rotate or flip the live piece buffer
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.TransformRequest true "Transform op"
// @Success 200 {object} map[string]interface{}
// @Router /transform [post]
func TransformHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TransformRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		if err := rm.Transform(rx, req.PlayerID, req.Op); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx})
	}
}

// @Summary Place the selected piece
// @Description Anchor the piece buffer at (row, col); advances the turn on success
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.PlaceRequest true "Placement"
// @Success 200 {object} map[string]interface{}
// @Router /place [post]
func PlaceHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		if err := rm.Place(rx, req.PlayerID, req.Row, req.Col); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":   true,
			"room": rx,
			"rank": rm.Rank(rx),
		})
	}
}

// @Summary Pass the current turn
// @Description Skip the current player's turn; counts toward game over
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.PassRequest true "Pass"
// @Success 200 {object} map[string]interface{}
// @Router /pass [post]
func PassHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PassRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		if err := rm.Pass(rx, req.PlayerID); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx})
	}
}

// @Summary Get player ranking
// @Description Players ordered by fewest squares left unplaced
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /rank [get]
func RankHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"rank": rm.Rank(rx)})
	}
}

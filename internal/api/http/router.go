package http

import (
	"github.com/AiredaleDev/blorus/internal/api/ws"
	"github.com/AiredaleDev/blorus/internal/room"

	"github.com/gin-gonic/gin"
)

func NewRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/join-room", JoinRoomHandler(rm))
	r.POST("/start", StartHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/state", StateHandler(rm))
	r.GET("/pieces", PieceCatalogHandler())
	r.POST("/select-piece", SelectPieceHandler(rm))
	r.POST("/transform", TransformHandler(rm))
	r.POST("/place", PlaceHandler(rm))
	r.POST("/pass", PassHandler(rm))
	r.GET("/rank", RankHandler(rm))

	return r
}

package ws

import (
	"github.com/AiredaleDev/blorus/internal/game"
	"github.com/AiredaleDev/blorus/internal/shared"
)

type RoomManager interface {
	Get(code string) (*shared.Room, bool)
	SelectPiece(r *shared.Room, playerID string, id game.PieceID) error
	Transform(r *shared.Room, playerID, op string) error
	Place(r *shared.Room, playerID string, row, col int) error
	Pass(r *shared.Room, playerID string) error
}

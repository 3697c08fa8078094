package http

import "github.com/AiredaleDev/blorus/internal/game"

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// JoinRoomRequest represents the payload for /join-room.
type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// StartRequest represents the payload for /start.
type StartRequest struct {
	RoomCode string `json:"roomCode"`
}

// SelectPieceRequest represents the payload for /select-piece. Piece -1
// clears the selection.
type SelectPieceRequest struct {
	RoomCode string       `json:"roomCode"`
	PlayerID string       `json:"playerId"`
	Piece    game.PieceID `json:"piece"`
}

// TransformRequest represents the payload for /transform. Op is one of
// rotate-left, rotate-right, flip-horizontal, flip-vertical.
type TransformRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
	Op       string `json:"op"`
}

// PlaceRequest represents the payload for /place. Row and Col anchor the
// piece buffer's frame center in play-area coordinates.
type PlaceRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

// PassRequest represents the payload for /pass.
type PassRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}

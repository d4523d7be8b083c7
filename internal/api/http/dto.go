package http

// CreateRoomRequest is the payload of POST /rooms. Zero sizes use the server defaults.
type CreateRoomRequest struct {
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Players int      `json:"players"`
	Areas   int      `json:"areas"`
	Names   []string `json:"names"`
	Bots    int      `json:"bots"`
}

// MoveRequest is a move by the seat whose turn it is.
type MoveRequest struct {
	Seat   string `json:"seat" binding:"required"`
	X      *int   `json:"x" binding:"required"`
	Y      *int   `json:"y" binding:"required"`
	Golden bool   `json:"golden"`
}

type SkipRequest struct {
	Seat string `json:"seat" binding:"required"`
}

// RoomSummary is one entry of GET /rooms.
type RoomSummary struct {
	Code     string `json:"code"`
	Players  int    `json:"players"`
	Turn     int    `json:"turn"`
	Finished bool   `json:"finished"`
}

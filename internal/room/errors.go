package room

import "errors"

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrSeatNotFound = errors.New("seat not found")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrGameFinished = errors.New("game finished")
	ErrTooManyNames = errors.New("more names than players")
	ErrRoomTooLarge = errors.New("room exceeds server limits")
)

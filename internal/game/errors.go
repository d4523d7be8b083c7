package game

import "errors"

var (
	ErrInvalidParams = errors.New("width, height, players and areas must be positive")
	ErrBoardTooLarge = errors.New("game does not fit in memory limits")

	ErrInvalidPlayer = errors.New("invalid player")
	ErrOutOfBounds   = errors.New("position out of bounds")
	ErrCellOccupied  = errors.New("cell already occupied")
	ErrCellFree      = errors.New("cell is free")
	ErrOwnCell       = errors.New("cell already belongs to player")
	ErrGoldenUsed    = errors.New("golden move already used")
	ErrAreaLimit     = errors.New("move exceeds area limit")

	ErrInvariant = errors.New("bookkeeping invariant violated")
)

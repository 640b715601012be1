package game

import "errors"

var (
	// ErrInvalidMove rejects a placement on an occupied or out-of-range cell.
	ErrInvalidMove = errors.New("invalid move")
	// ErrOutOfRange rejects a coordinate query outside the grid.
	ErrOutOfRange = errors.New("coordinates out of range")
	// ErrGameOver rejects any mutation or search once the board is full.
	ErrGameOver = errors.New("game is already over")
)

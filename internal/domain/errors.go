package domain

import "errors"

var (
	ErrPipOutOfRange     = errors.New("pip value out of range")
	ErrIndexOutOfRange   = errors.New("hand index out of range")
	ErrPileEmpty         = errors.New("draw pile is empty")
	ErrInsufficientTiles = errors.New("not enough tiles left to deal")
	ErrNegativeCount     = errors.New("tile count must not be negative")
	// ErrNoMatch is returned when a tile is placed on an end it cannot join.
	ErrNoMatch = errors.New("tile does not match the open end")
)

package game

import "errors"

var (
	// ErrInvalidInput is returned for malformed codes: a length that doesn't
	// match the game, or a color outside the palette.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidOperation is returned when a guess is submitted to a game that
	// has already been won or lost.
	ErrInvalidOperation = errors.New("invalid operation")
)

package keyboard

import "errors"

var (
	// ErrEmptyRow is returned when a row is built from zero buttons.
	ErrEmptyRow = errors.New("keyboard: row has no buttons")
	// ErrInvalidChunk is returned by Chunk for a non-positive size.
	ErrInvalidChunk = errors.New("keyboard: chunk size must be positive")
)

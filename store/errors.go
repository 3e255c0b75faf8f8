package store

import "errors"

var (
	// ErrInvalidKey is returned when a key contains path separators or
	// other characters a backend cannot store safely.
	ErrInvalidKey = errors.New("invalid state key")
)

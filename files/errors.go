package files

import "errors"

var (
	// ErrNotFound is returned when the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrIsDirectory is returned when the path points at a directory.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrTooLarge is returned when the file exceeds the reader's size limit.
	ErrTooLarge = errors.New("file exceeds maximum size")
)

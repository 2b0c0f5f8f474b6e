package roster

import "errors"

var (
	// ErrIndexOutOfRange is returned when a position does not exist in the roster
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSave is returned when the roster could not be persisted
	ErrSave = errors.New("saving roster")

	// ErrLoad is returned when an existing roster file could not be read
	ErrLoad = errors.New("loading roster")
)

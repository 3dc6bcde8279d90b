package gang

import "errors"

var (
	// ErrNotFound indicates the gang is not on the roster.
	ErrNotFound = errors.New("gang not found")
	// ErrDuplicate indicates the gang is already on the roster.
	ErrDuplicate = errors.New("gang already exists")
	// ErrInvalidName indicates an empty or over-long gang name.
	ErrInvalidName = errors.New("invalid gang name")
)

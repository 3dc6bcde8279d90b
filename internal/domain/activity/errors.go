package activity

import "errors"

var (
	// ErrInvalidInput indicates an empty gang name or unknown activity type.
	ErrInvalidInput = errors.New("invalid activity input")
)

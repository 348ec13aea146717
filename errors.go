package sorted

import "errors"

var (
	ErrOutOfBounds = errors.New("index out of bounds")

	ErrInvalidRange = errors.New("range start is greater than range end")

	ErrConcurrentModification = errors.New("list modified during iteration")
)

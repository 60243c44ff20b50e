package allocation

import "errors"

var (
	// ErrInvalidConfiguration is returned when items per box is not a positive integer.
	ErrInvalidConfiguration = errors.New("items per box must be a positive integer")
	// ErrInvalidInput is returned when a size carries a negative piece count.
	ErrInvalidInput = errors.New("piece count must be a non-negative integer")
)

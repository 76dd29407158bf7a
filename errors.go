package qrcode

import "errors"

var (
	// ErrCapacityExceeded is returned when the content does not fit in any
	// supported version (1-10) at the requested recovery level.
	ErrCapacityExceeded = errors.New("content too long to encode")

	// ErrInvalidLevel is returned for an unknown recovery level.
	ErrInvalidLevel = errors.New("invalid recovery level")

	// ErrInternal marks a broken internal invariant, such as a codeword
	// stream that does not exactly fill the symbol. It indicates a bug.
	ErrInternal = errors.New("bug")
)

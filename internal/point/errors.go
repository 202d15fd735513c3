package point

import "errors"

var (
	// ErrInvalidSize is returned when a rect is too large to fit inside the
	// outer rect it is being positioned in.
	ErrInvalidSize = errors.New("inner rect larger than outer rect")

	// ErrOutOfBounds is returned when an outer rect does not contain the
	// anchor corner of the rect being sized.
	ErrOutOfBounds = errors.New("anchor outside outer rect")
)

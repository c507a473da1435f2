package points

import (
	"errors"
)

var (
	// ErrInvalidArgument is wrapped by errors for out of range parameters.
	// It's always returned before any sampling or I/O happens.
	ErrInvalidArgument = errors.New("points: invalid argument")

	// ErrIO is wrapped by errors opening, writing or closing a points file.
	ErrIO = errors.New("points: i/o error")

	// ErrMalformed is wrapped by errors decoding a points file.
	ErrMalformed = errors.New("points: malformed points file")
)

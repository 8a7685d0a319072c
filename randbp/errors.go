package randbp

import (
	"errors"
)

// ErrInvalidArgument is returned (wrapped) when a profile is unknown,
// or when a bounded or ranged draw is asked for an empty range.
//
// Use errors.Is to check for it.
var ErrInvalidArgument = errors.New("randbp: invalid argument")

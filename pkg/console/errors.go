package console

import "errors"

// ErrInvalidNumber is returned when a line is not a non-negative base-10 integer
var ErrInvalidNumber = errors.New("invalid number")

package strongint

import "errors"

var (
	ErrInvalidText = errors.New("strongint: value is not a valid integer")
	ErrOutOfRange  = errors.New("strongint: value out of range for the representation")
)

package foreach

import "errors"

var (
	// ErrOutOfRange reports a range outside its backing buffer or a
	// destination too short for a copy.
	ErrOutOfRange = errors.New("foreach: out of range")
	// ErrInvalidAccess is the panic value (wrapped) of Current outside the
	// window where the last Next returned true.
	ErrInvalidAccess = errors.New("foreach: invalid cursor access")
)

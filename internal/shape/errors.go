package shape

import "errors"

var (
	ErrAbstractShape       = errors.New("cannot instantiate abstract shape")
	ErrUnknownKind         = errors.New("unknown shape kind")
	ErrMissingDimension    = errors.New("missing dimension")
	ErrUnexpectedDimension = errors.New("unexpected dimension")
	ErrInvalidDimension    = errors.New("invalid dimension")
)

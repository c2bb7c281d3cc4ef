package shape

import (
	"fmt"
	"math"
	"sort"
)

type options struct {
	strict bool
}

type Option func(*options)

// WithStrict rejects zero, negative, NaN and infinite dimensions. Without it, New
// accepts any number, matching the direct constructors.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// New builds a concrete shape from a details mapping keyed the same way Details
// returns it. Asking for KindShape fails with ErrAbstractShape.
func New(kind Kind, dims Details, opts ...Option) (Shape, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if kind.Abstract() {
		return nil, ErrAbstractShape
	}

	keys := kind.Dimensions()
	if keys == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}

	if err := checkDimensions(keys, dims, o.strict); err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	switch kind {
	case KindRectangle:
		return NewRectangle(dims["width"], dims["height"]), nil
	case KindTriangle:
		return NewTriangle(dims["base"], dims["height"]), nil
	case KindCircle:
		return NewCircle(dims["radius"]), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
}

func checkDimensions(keys []string, dims Details, strict bool) error {
	allowed := make(map[string]bool, len(keys))
	for _, key := range keys {
		allowed[key] = true
		v, ok := dims[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingDimension, key)
		}
		if strict && (v <= 0 || math.IsNaN(v) || math.IsInf(v, 0)) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidDimension, key, v)
		}
	}

	var extra []string
	for key := range dims {
		if !allowed[key] {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return fmt.Errorf("%w: %v", ErrUnexpectedDimension, extra)
	}
	return nil
}

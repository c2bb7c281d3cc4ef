// Package shape models the geometric figures whose areas the figuras CLI reports.
package shape

import "fmt"

// Shape is anything with a computable area.
type Shape interface {
	Area() float64
	Kind() Kind
}

type Describer interface {
	Describe() string
}

type Detailer interface {
	Details() Details
}

type Thresholder interface {
	IsLargeArea(threshold float64) bool
}

// Details holds the defining dimensions of a shape, keyed by dimension name.
type Details map[string]float64

// Describe returns the shape's own description, falling back to a generic one built
// from its area.
func Describe(s Shape) string {
	if d, ok := s.(Describer); ok {
		return d.Describe()
	}
	return fmt.Sprintf("Figura geométrica de área %s", FormatNumber(s.Area()))
}

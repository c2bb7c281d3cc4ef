package shape

import "fmt"

// Triangle is defined by its base and height; its area is base * height / 2.
type Triangle struct {
	base   float64
	height float64
}

// NewTriangle accepts any dimensions, like NewRectangle.
func NewTriangle(base, height float64) Triangle {
	return Triangle{base: base, height: height}
}

func (t Triangle) Base() float64   { return t.base }
func (t Triangle) Height() float64 { return t.height }

func (t Triangle) Kind() Kind {
	return KindTriangle
}

func (t Triangle) Area() float64 {
	return (t.base * t.height) / 2
}

func (t Triangle) Describe() string {
	return fmt.Sprintf("Triángulo de base %s y altura %s", FormatNumber(t.base), FormatNumber(t.height))
}

func (t Triangle) String() string {
	return t.Describe()
}

func (t Triangle) Details() Details {
	return Details{
		"base":   t.base,
		"height": t.height,
	}
}

func (t Triangle) IsLargeArea(threshold float64) bool {
	return t.Area() > threshold
}

package shape

import "fmt"

// Rectangle has area width * height.
type Rectangle struct {
	width  float64
	height float64
}

// NewRectangle accepts any dimensions; zero or negative values yield a zero or
// negative area.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{width: width, height: height}
}

func (r Rectangle) Width() float64  { return r.width }
func (r Rectangle) Height() float64 { return r.height }

func (r Rectangle) Kind() Kind {
	return KindRectangle
}

func (r Rectangle) Area() float64 {
	return r.width * r.height
}

func (r Rectangle) Describe() string {
	return fmt.Sprintf("Rectángulo de base %s y altura %s", FormatNumber(r.width), FormatNumber(r.height))
}

func (r Rectangle) String() string {
	return r.Describe()
}

func (r Rectangle) Details() Details {
	return Details{
		"width":  r.width,
		"height": r.height,
	}
}

func (r Rectangle) IsLargeArea(threshold float64) bool {
	return r.Area() > threshold
}

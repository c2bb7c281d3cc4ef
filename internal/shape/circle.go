package shape

import "fmt"

// circlePi is the five-digit approximation circle areas are computed with. Reported
// areas depend on this exact value, so it must not be replaced by math.Pi.
const circlePi = 3.14159

// Circle computes its area with circlePi rather than math.Pi.
type Circle struct {
	pi     float64
	radius float64
}

// NewCircle fixes pi on the instance; a negative radius squares to a positive area.
func NewCircle(radius float64) Circle {
	return Circle{pi: circlePi, radius: radius}
}

func (c Circle) Radius() float64 { return c.radius }

func (c Circle) Kind() Kind {
	return KindCircle
}

func (c Circle) Area() float64 {
	return c.pi * (c.radius * c.radius)
}

func (c Circle) Describe() string {
	return fmt.Sprintf("Círculo de radio %s", FormatNumber(c.radius))
}

func (c Circle) String() string {
	return c.Describe()
}

func (c Circle) Details() Details {
	return Details{"radius": c.radius}
}

func (c Circle) IsLargeArea(threshold float64) bool {
	return c.Area() > threshold
}

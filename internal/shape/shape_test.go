package shape

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type square struct {
	side float64
}

func (s square) Area() float64 { return s.side * s.side }
func (s square) Kind() Kind    { return Kind("square") }

func TestArea(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  float64
	}{
		{"rectangle", NewRectangle(10, 5), 50},
		{"triangle", NewTriangle(7, 4), 14.0},
		{"circle", NewCircle(3), 28.27431},
		{"circle uses fixed pi", NewCircle(1), 3.14159},
		{"rectangle fractional", NewRectangle(2.5, 4), 10},
		{"triangle odd product", NewTriangle(3, 3), 4.5},
		{"zero width", NewRectangle(0, 5), 0},
		{"negative height", NewRectangle(-2, 3), -6},
		{"negative radius squares away", NewCircle(-2), 3.14159 * 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.Area())
		})
	}
}

func TestCircleDoesNotUseMathPi(t *testing.T) {
	c := NewCircle(3)
	assert.NotEqual(t, math.Pi*9, c.Area())
	assert.Equal(t, "28.27431", FormatNumber(c.Area()))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		shape Shape
		want  string
	}{
		{NewRectangle(10, 5), "Rectángulo de base 10 y altura 5"},
		{NewTriangle(7, 4), "Triángulo de base 7 y altura 4"},
		{NewCircle(3), "Círculo de radio 3"},
		{NewCircle(1.5), "Círculo de radio 1.5"},
		{square{side: 4}, "Figura geométrica de área 16"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(tt.shape))
	}
}

func TestStringMatchesDescribe(t *testing.T) {
	r := NewRectangle(10, 5)
	assert.Equal(t, r.Describe(), r.String())
}

func TestDetails(t *testing.T) {
	tests := []struct {
		name  string
		shape Detailer
		want  Details
	}{
		{"rectangle", NewRectangle(10, 5), Details{"width": 10, "height": 5}},
		{"triangle", NewTriangle(7, 4), Details{"base": 7, "height": 4}},
		{"circle", NewCircle(3), Details{"radius": 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.shape.Details()); diff != "" {
				t.Errorf("details mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDetailsAreSnapshots(t *testing.T) {
	r := NewRectangle(10, 5)
	d := r.Details()
	d["width"] = 99

	assert.Equal(t, 50.0, r.Area())
	assert.Equal(t, 10.0, r.Details()["width"])
}

func TestIsLargeArea(t *testing.T) {
	shapes := []interface {
		Shape
		Thresholder
	}{
		NewRectangle(10, 5),
		NewTriangle(7, 4),
		NewCircle(3),
	}

	for _, s := range shapes {
		t.Run(s.Kind().String(), func(t *testing.T) {
			area := s.Area()
			assert.True(t, s.IsLargeArea(area-1), "below")
			assert.False(t, s.IsLargeArea(area), "equal")
			assert.False(t, s.IsLargeArea(area+1), "above")
			assert.True(t, s.IsLargeArea(-100), "negative threshold")
		})
	}
}

func TestRectangleScenarios(t *testing.T) {
	r := NewRectangle(10, 5)
	assert.True(t, r.IsLargeArea(40))
	assert.False(t, r.IsLargeArea(50))
	assert.False(t, r.IsLargeArea(60))
}

func TestNew(t *testing.T) {
	s, err := New(KindTriangle, Details{"base": 7, "height": 4})
	require.NoError(t, err)
	assert.Equal(t, NewTriangle(7, 4), s)

	s, err = New(KindCircle, Details{"radius": 3})
	require.NoError(t, err)
	assert.Equal(t, 28.27431, s.Area())

	s, err = New(KindRectangle, Details{"width": -1, "height": 5})
	require.NoError(t, err)
	assert.Equal(t, -5.0, s.Area())
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		dims Details
		opts []Option
		want error
	}{
		{"abstract", KindShape, Details{}, nil, ErrAbstractShape},
		{"unknown", Kind("hexagon"), Details{"side": 1}, nil, ErrUnknownKind},
		{"missing", KindRectangle, Details{"width": 1}, nil, ErrMissingDimension},
		{"unexpected", KindCircle, Details{"radius": 1, "diameter": 2}, nil, ErrUnexpectedDimension},
		{"strict zero", KindTriangle, Details{"base": 0, "height": 4}, []Option{WithStrict()}, ErrInvalidDimension},
		{"strict negative", KindCircle, Details{"radius": -3}, []Option{WithStrict()}, ErrInvalidDimension},
		{"strict nan", KindCircle, Details{"radius": math.NaN()}, []Option{WithStrict()}, ErrInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.kind, tt.dims, tt.opts...)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"rectangle":  KindRectangle,
		"Rectángulo": KindRectangle,
		"triangulo":  KindTriangle,
		" circle ":   KindCircle,
		"círculo":    KindCircle,
		"figura":     KindShape,
	}
	for in, want := range tests {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseKind("hexagon")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindLabelsAndDimensions(t *testing.T) {
	assert.Equal(t, "rectángulo", KindRectangle.Label())
	assert.Equal(t, "triángulo", KindTriangle.Label())
	assert.Equal(t, "círculo", KindCircle.Label())
	assert.True(t, KindShape.Abstract())
	assert.Nil(t, KindShape.Dimensions())
	assert.Equal(t, []string{"base", "height"}, KindTriangle.Dimensions())

	for _, k := range ConcreteKinds() {
		s, err := New(k, dimsOf(k))
		require.NoError(t, err)
		assert.Equal(t, k, s.Kind())
	}
}

func dimsOf(k Kind) Details {
	d := Details{}
	for _, key := range k.Dimensions() {
		d[key] = 1
	}
	return d
}

func TestAccessors(t *testing.T) {
	r := NewRectangle(10, 5)
	assert.Equal(t, 10.0, r.Width())
	assert.Equal(t, 5.0, r.Height())

	tr := NewTriangle(7, 4)
	assert.Equal(t, 7.0, tr.Base())
	assert.Equal(t, 4.0, tr.Height())

	assert.Equal(t, 3.0, NewCircle(3).Radius())
}

package shape

import (
	"fmt"
	"strings"
)

type Kind string

const (
	// KindShape names the abstract contract itself and is never constructible.
	KindShape     Kind = "shape"
	KindRectangle Kind = "rectangle"
	KindTriangle  Kind = "triangle"
	KindCircle    Kind = "circle"
)

var kindAliases = map[string]Kind{
	"shape":      KindShape,
	"figura":     KindShape,
	"rectangle":  KindRectangle,
	"rectangulo": KindRectangle,
	"rectángulo": KindRectangle,
	"triangle":   KindTriangle,
	"triangulo":  KindTriangle,
	"triángulo":  KindTriangle,
	"circle":     KindCircle,
	"circulo":    KindCircle,
	"círculo":    KindCircle,
}

var kindLabels = map[Kind]string{
	KindShape:     "figura geométrica",
	KindRectangle: "rectángulo",
	KindTriangle:  "triángulo",
	KindCircle:    "círculo",
}

var kindDimensions = map[Kind][]string{
	KindRectangle: {"width", "height"},
	KindTriangle:  {"base", "height"},
	KindCircle:    {"radius"},
}

// ParseKind accepts English or Spanish names, with or without accents.
func ParseKind(name string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// ConcreteKinds returns the constructible kinds in presentation order.
func ConcreteKinds() []Kind {
	return []Kind{KindRectangle, KindTriangle, KindCircle}
}

func (k Kind) String() string {
	return string(k)
}

// Label is the Spanish noun used in report lines.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

func (k Kind) Abstract() bool {
	return k == KindShape
}

// Dimensions returns the detail keys a kind is built from, or nil for the abstract
// or an unknown kind.
func (k Kind) Dimensions() []string {
	dims := kindDimensions[k]
	if dims == nil {
		return nil
	}
	out := make([]string, len(dims))
	copy(out, dims)
	return out
}

// Package report renders the console lines the figuras command prints for each shape.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alucardeht/figuras/internal/config"
	"github.com/alucardeht/figuras/internal/shape"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Option func(*Printer) error

// WithLocale formats numbers for a BCP 47 tag such as "es" or "es-AR". An empty tag
// keeps the plain shortest decimal.
func WithLocale(tag string) Option {
	return func(p *Printer) error {
		if tag == "" {
			p.msg = nil
			return nil
		}
		lang, err := language.Parse(tag)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", tag, err)
		}
		p.msg = message.NewPrinter(lang)
		return nil
	}
}

// WithDetails adds the description and dimensions under each area line.
func WithDetails() Option {
	return func(p *Printer) error {
		p.details = true
		return nil
	}
}

type Printer struct {
	w       io.Writer
	msg     *message.Printer
	details bool
}

func New(w io.Writer, opts ...Option) (*Printer, error) {
	p := &Printer{w: w}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Printer) Print(shapes ...shape.Shape) error {
	for _, s := range shapes {
		if err := p.printOne(s); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printOne(s shape.Shape) error {
	if _, err := fmt.Fprintf(p.w, "El área del %s es: %s\n", s.Kind().Label(), p.number(s.Area())); err != nil {
		return err
	}
	if !p.details {
		return nil
	}

	if _, err := fmt.Fprintf(p.w, "  %s\n", shape.Describe(s)); err != nil {
		return err
	}
	if d, ok := s.(shape.Detailer); ok {
		if _, err := fmt.Fprintf(p.w, "  detalles: %s\n", p.formatDetails(d.Details())); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) number(v float64) string {
	if p.msg == nil {
		return shape.FormatNumber(v)
	}
	return p.msg.Sprint(v)
}

func (p *Printer) formatDetails(d shape.Details) string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+p.number(d[k]))
	}
	return strings.Join(parts, " ")
}

// Samples builds the rectangle, triangle and circle described by cfg, in that order.
func Samples(cfg config.SamplesConfig, opts ...shape.Option) ([]shape.Shape, error) {
	samples := []struct {
		kind shape.Kind
		dims shape.Details
	}{
		{shape.KindRectangle, shape.Details{"width": cfg.Rectangle.Width, "height": cfg.Rectangle.Height}},
		{shape.KindTriangle, shape.Details{"base": cfg.Triangle.Base, "height": cfg.Triangle.Height}},
		{shape.KindCircle, shape.Details{"radius": cfg.Circle.Radius}},
	}

	shapes := make([]shape.Shape, 0, len(samples))
	for _, sample := range samples {
		s, err := shape.New(sample.kind, sample.dims, opts...)
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", sample.kind, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

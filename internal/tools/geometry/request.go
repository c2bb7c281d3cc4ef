package geometry

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/alucardeht/figuras/internal/shape"
	"github.com/alucardeht/figuras/internal/tools"
)

// Request is the input shared by the shape tools.
type Request struct {
	Shape      string        `json:"shape"`
	Dimensions shape.Details `json:"dimensions"`
	Threshold  *float64      `json:"threshold,omitempty"`
}

type builder struct {
	strict bool
}

func (b builder) options() []shape.Option {
	if b.strict {
		return []shape.Option{shape.WithStrict()}
	}
	return nil
}

func (b builder) build(input json.RawMessage) (shape.Shape, Request, error) {
	var req Request
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, req, fmt.Errorf("invalid request: %w", err)
	}

	if req.Shape == "" {
		return nil, req, fmt.Errorf("shape is required")
	}

	kind, err := shape.ParseKind(req.Shape)
	if err != nil {
		return nil, req, err
	}

	s, err := shape.New(kind, req.Dimensions, b.options()...)
	if err != nil {
		return nil, req, err
	}
	return s, req, nil
}

const shapeSchemaProperties = `
			"shape": {
				"type": "string",
				"enum": ["rectangle", "triangle", "circle"],
				"description": "Shape kind (Spanish names such as rectangulo are also accepted)"
			},
			"dimensions": {
				"type": "object",
				"description": "rectangle: width, height; triangle: base, height; circle: radius",
				"additionalProperties": {"type": "number"}
			}`

// finiteArea fails when the area overflowed float64, since JSON cannot carry it.
func finiteArea(name string, s shape.Shape) (float64, error) {
	area := s.Area()
	if math.IsInf(area, 0) || math.IsNaN(area) {
		return 0, tools.NewToolExecutionError(name, fmt.Errorf("%s area is not finite: %v", s.Kind(), area))
	}
	return area, nil
}

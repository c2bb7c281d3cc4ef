package geometry

import (
	"encoding/json"
	"fmt"

	"github.com/alucardeht/figuras/internal/shape"
	"github.com/alucardeht/figuras/internal/tools"
)

type LargeAreaResponse struct {
	Shape     string  `json:"shape"`
	Area      float64 `json:"area"`
	Threshold float64 `json:"threshold"`
	Large     bool    `json:"large"`
}

type LargeAreaTool struct {
	builder
}

func (t *LargeAreaTool) Name() string {
	return "shape_is_large_area"
}

func (t *LargeAreaTool) Title() string {
	return "Large area check"
}

func (t *LargeAreaTool) Description() string {
	return "Report whether a shape's area is strictly greater than a threshold"
}

func (t *LargeAreaTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *LargeAreaTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {` + shapeSchemaProperties + `,
			"threshold": {
				"type": "number",
				"description": "Area the shape must exceed"
			}
		},
		"required": ["shape", "dimensions", "threshold"]
	}`)
}

func (t *LargeAreaTool) Execute(input json.RawMessage) (interface{}, error) {
	s, req, err := t.build(input)
	if err != nil {
		return nil, tools.NewInvalidParamsError(t.Name(), err)
	}

	if req.Threshold == nil {
		return nil, tools.NewInvalidParamsError(t.Name(), fmt.Errorf("threshold is required"))
	}
	threshold := *req.Threshold

	th, ok := s.(shape.Thresholder)
	if !ok {
		return nil, fmt.Errorf("%s has no large-area check", s.Kind())
	}

	area, err := finiteArea(t.Name(), s)
	if err != nil {
		return nil, err
	}

	return LargeAreaResponse{
		Shape:     s.Kind().String(),
		Area:      area,
		Threshold: threshold,
		Large:     th.IsLargeArea(threshold),
	}, nil
}

package geometry

import (
	"encoding/json"

	"github.com/alucardeht/figuras/internal/tools"
)

type AreaResponse struct {
	Shape string  `json:"shape"`
	Area  float64 `json:"area"`
}

type AreaTool struct {
	builder
}

func (t *AreaTool) Name() string {
	return "shape_area"
}

func (t *AreaTool) Title() string {
	return "Shape area"
}

func (t *AreaTool) Description() string {
	return "Compute the area of a rectangle, triangle or circle"
}

func (t *AreaTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *AreaTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {` + shapeSchemaProperties + `
		},
		"required": ["shape", "dimensions"]
	}`)
}

func (t *AreaTool) Execute(input json.RawMessage) (interface{}, error) {
	s, _, err := t.build(input)
	if err != nil {
		return nil, tools.NewInvalidParamsError(t.Name(), err)
	}

	area, err := finiteArea(t.Name(), s)
	if err != nil {
		return nil, err
	}

	return AreaResponse{
		Shape: s.Kind().String(),
		Area:  area,
	}, nil
}

package geometry

import (
	"encoding/json"
	"fmt"

	"github.com/alucardeht/figuras/internal/shape"
	"github.com/alucardeht/figuras/internal/tools"
)

type DetailsResponse struct {
	Shape   string        `json:"shape"`
	Details shape.Details `json:"details"`
}

type DetailsTool struct {
	builder
}

func (t *DetailsTool) Name() string {
	return "shape_details"
}

func (t *DetailsTool) Title() string {
	return "Shape details"
}

func (t *DetailsTool) Description() string {
	return "Return the defining dimensions of a shape"
}

func (t *DetailsTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *DetailsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {` + shapeSchemaProperties + `
		},
		"required": ["shape", "dimensions"]
	}`)
}

func (t *DetailsTool) Execute(input json.RawMessage) (interface{}, error) {
	s, _, err := t.build(input)
	if err != nil {
		return nil, tools.NewInvalidParamsError(t.Name(), err)
	}

	d, ok := s.(shape.Detailer)
	if !ok {
		return nil, fmt.Errorf("%s has no details", s.Kind())
	}

	return DetailsResponse{
		Shape:   s.Kind().String(),
		Details: d.Details(),
	}, nil
}

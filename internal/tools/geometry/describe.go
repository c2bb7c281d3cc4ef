package geometry

import (
	"encoding/json"

	"github.com/alucardeht/figuras/internal/shape"
	"github.com/alucardeht/figuras/internal/tools"
)

type DescribeResponse struct {
	Shape       string `json:"shape"`
	Description string `json:"description"`
}

type DescribeTool struct {
	builder
}

func (t *DescribeTool) Name() string {
	return "shape_describe"
}

func (t *DescribeTool) Title() string {
	return "Describe shape"
}

func (t *DescribeTool) Description() string {
	return "Describe a shape by its defining dimensions"
}

func (t *DescribeTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *DescribeTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {` + shapeSchemaProperties + `
		},
		"required": ["shape", "dimensions"]
	}`)
}

func (t *DescribeTool) Execute(input json.RawMessage) (interface{}, error) {
	s, _, err := t.build(input)
	if err != nil {
		return nil, tools.NewInvalidParamsError(t.Name(), err)
	}

	return DescribeResponse{
		Shape:       s.Kind().String(),
		Description: shape.Describe(s),
	}, nil
}

package geometry

import (
	"encoding/json"

	"github.com/alucardeht/figuras/internal/shape"
	"github.com/alucardeht/figuras/internal/tools"
)

type KindInfo struct {
	Name       string   `json:"name"`
	Label      string   `json:"label"`
	Dimensions []string `json:"dimensions"`
}

type KindsResponse struct {
	Kinds []KindInfo `json:"kinds"`
}

type KindsTool struct{}

func (t *KindsTool) Name() string {
	return "shape_kinds"
}

func (t *KindsTool) Title() string {
	return "Shape kinds"
}

func (t *KindsTool) Description() string {
	return "List the constructible shape kinds and the dimensions each one takes"
}

func (t *KindsTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *KindsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {},
		"required": []
	}`)
}

func (t *KindsTool) Execute(input json.RawMessage) (interface{}, error) {
	kinds := shape.ConcreteKinds()
	resp := KindsResponse{Kinds: make([]KindInfo, 0, len(kinds))}
	for _, k := range kinds {
		resp.Kinds = append(resp.Kinds, KindInfo{
			Name:       k.String(),
			Label:      k.Label(),
			Dimensions: k.Dimensions(),
		})
	}
	return resp, nil
}

// Package geometry exposes shape queries as registry tools taking JSON input.
package geometry

import (
	"github.com/alucardeht/figuras/internal/tools"
)

// GetTools returns every geometry tool. With strict set, non-positive dimensions are
// rejected instead of producing zero or negative areas.
func GetTools(strict bool) []tools.Tool {
	b := builder{strict: strict}
	return []tools.Tool{
		&AreaTool{builder: b},
		&DescribeTool{builder: b},
		&DetailsTool{builder: b},
		&LargeAreaTool{builder: b},
		&KindsTool{},
	}
}

func GetToolByName(name string, strict bool) tools.Tool {
	for _, tool := range GetTools(strict) {
		if tool.Name() == name {
			return tool
		}
	}
	return nil
}

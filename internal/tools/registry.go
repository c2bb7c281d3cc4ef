package tools

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/alucardeht/figuras/internal/logger"
	"github.com/alucardeht/figuras/pkg/protocol"
	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

type Tool interface {
	Name() string
	Description() string
	Schema() json.RawMessage
	Execute(input json.RawMessage) (interface{}, error)
}

type AnnotatedTool interface {
	Tool
	Title() string
	Annotations() map[string]bool
}

type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

func (r *Registry) Register(tool Tool) error {
	name := tool.Name()
	if name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool already registered: %s", name)
	}

	r.tools[name] = tool
	return nil
}

func (r *Registry) RegisterAll(tools []Tool) error {
	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// Execute runs the named tool. Failures always come back as *ToolError.
func (r *Registry) Execute(name string, input json.RawMessage) (interface{}, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, NewToolNotFoundError(name)
	}

	log := logger.ForComponent("tools").With(zap.String("tool", name))
	result, err := tool.Execute(input)
	if err != nil {
		log.Debug("tool failed", zap.Error(err))
		return nil, AsToolError(name, err)
	}
	log.Debug("tool executed")
	return result, nil
}

// List returns the registered tools sorted by name.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		result = append(result, tool)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

func (r *Registry) Names() []string {
	tools := r.List()
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name())
	}
	return names
}

// Match returns the tools whose names match a doublestar glob such as "shape_*".
func (r *Registry) Match(pattern string) ([]Tool, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid tool pattern: %s", pattern)
	}

	var matched []Tool
	for _, tool := range r.List() {
		if ok, _ := doublestar.Match(pattern, tool.Name()); ok {
			matched = append(matched, tool)
		}
	}
	return matched, nil
}

func Definition(tool Tool) protocol.ToolDefinition {
	def := protocol.ToolDefinition{
		Name:        tool.Name(),
		Description: tool.Description(),
		InputSchema: tool.Schema(),
	}
	if at, ok := tool.(AnnotatedTool); ok {
		def.Title = at.Title()
		def.Annotations = at.Annotations()
	}
	return def
}

func Definitions(tools []Tool) []protocol.ToolDefinition {
	defs := make([]protocol.ToolDefinition, 0, len(tools))
	for _, tool := range tools {
		defs = append(defs, Definition(tool))
	}
	return defs
}

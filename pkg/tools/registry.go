package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Handler executes a tool call. Arguments arrive as the raw JSON object the
// caller submitted; the handler owns decoding them into its parameter types.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Param describes one declared tool parameter for runtimes that introspect
// tool signatures.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

// Tool couples a callable with the metadata a runtime needs to expose it.
type Tool struct {
	Name        string
	Description string
	Params      []Param
	Handler     Handler
}

// Registry maps fixed tool names to handlers. It is safe for concurrent use,
// though the expected lifecycle is register-everything-at-startup followed by
// read-only dispatch.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool under its name. Names are unique; re-registering a
// name fails rather than silently replacing the previous handler.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return ErrEmptyToolName
	}
	if t.Handler == nil {
		return fmt.Errorf("%w: %s", ErrNilHandler, t.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, t.Name)
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Call dispatches a named tool invocation. It performs name lookup and
// argument hand-off only; everything else is the handler's responsibility.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	r.mu.RLock()
	t, ok := r.tools[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return t.Handler(ctx, args)
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]
	return t, ok
}

// Names returns tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Tools returns all registered tools in registration order.
func (r *Registry) Tools() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.tools[name])
	}
	return list
}

package server

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
)

// UnknownToolError is returned for a tool name that is not registered.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// Registry maps tool names to their spec and handler. It is built once and
// never modified, so it is safe for concurrent use.
type Registry struct {
	tools map[string]server.ServerTool
}

// NewRegistry indexes tools by name. A later tool with the same name replaces an earlier one.
func NewRegistry(serverTools []server.ServerTool) *Registry {
	r := &Registry{tools: make(map[string]server.ServerTool, len(serverTools))}
	for _, t := range serverTools {
		r.tools[t.Tool.Name] = t
	}
	return r
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the tool specs sorted by name.
func (r *Registry) List() []mcp.Tool {
	specs := make([]mcp.Tool, 0, len(r.tools))
	for _, name := range r.Names() {
		specs = append(specs, r.tools[name].Tool)
	}
	return specs
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (server.ServerTool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Invoke routes one call to its handler. An unknown name and a handler error
// are both rendered as text, so the result is never nil.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	t, ok := r.tools[name]
	if !ok {
		err := &UnknownToolError{Name: name}
		slog.Warn("unknown tool requested", "tool", name)
		return mcp.NewToolResultText(err.Error())
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := t.Handler(ctx, req)
	if err != nil {
		slog.Error("tool handler failed", "tool", name, "error", err)
		return tools.ErrorText(err.Error())
	}
	if result == nil {
		return mcp.NewToolResultText("")
	}
	return result
}

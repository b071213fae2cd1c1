package components

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
)

// ListComponentsHandler returns a handler function for the list_components tool
func ListComponentsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListComponents(ctx, deps)
	}
}

func handleListComponents(ctx context.Context, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Components == nil {
		errMessage := "component service is not initialized"
		slog.Error(errMessage)
		return tools.ErrorText(errMessage), nil
	}
	deps.EmitToolEvent(ListComponentsToolName)

	res := deps.Components.ListAll(ctx)
	if res.Failed() {
		return tools.FailureResult(ListComponentsToolName, res.Failure()), nil
	}

	catalog, _ := res.Object()
	return mcp.NewToolResultText(renderCatalog(catalog)), nil
}

// renderCatalog lists categories and component names in sorted order.
// Entries that are not objects are not categories and are skipped.
func renderCatalog(catalog map[string]any) string {
	categories := make([]string, 0, len(catalog))
	for category, components := range catalog {
		if _, ok := components.(map[string]any); ok {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)

	var sb strings.Builder
	sb.WriteString("Available Langflow Components:\n\n")
	for _, category := range categories {
		components := catalog[category].(map[string]any)
		names := make([]string, 0, len(components))
		for name := range components {
			names = append(names, name)
		}
		sort.Strings(names)

		sb.WriteString("### " + category + "\n")
		for _, name := range names {
			sb.WriteString("  • " + name + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

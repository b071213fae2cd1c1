package flows

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
)

const noFlowsMessage = "No flows found."

// ListFlowsHandler returns a handler function for the list_flows tool
func ListFlowsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListFlows(ctx, request, deps)
	}
}

func handleListFlows(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Flows == nil {
		errMessage := "flow service is not initialized"
		slog.Error(errMessage)
		return tools.ErrorText(errMessage), nil
	}
	deps.EmitToolEvent(ListFlowsToolName)

	var args ListFlowsInput
	if err := request.BindArguments(&args); err != nil {
		return tools.ArgumentErrorResult(tools.BindError(ListFlowsToolName, err)), nil
	}
	limit := DefaultListLimit
	if args.Limit != nil {
		limit = *args.Limit
	}
	if limit < 0 {
		return tools.ArgumentErrorResult(&tools.ArgumentError{
			Tool:     ListFlowsToolName,
			Argument: "limit",
			Reason:   "must not be negative",
		}), nil
	}

	res := deps.Flows.List(ctx, args.FolderID)
	if res.Failed() {
		return tools.FailureResult(ListFlowsToolName, res.Failure()), nil
	}

	flows := extractFlows(res.Body())
	slog.Debug("fetched flows", "count", len(flows), "limit", limit)
	if len(flows) > limit {
		flows = flows[:limit]
	}
	if len(flows) == 0 {
		return mcp.NewToolResultText(noFlowsMessage), nil
	}

	return mcp.NewToolResultText(renderFlowList(flows)), nil
}

// extractFlows accepts a bare array of flows or an object with a "flows" array.
func extractFlows(body any) []any {
	switch v := body.(type) {
	case []any:
		return v
	case map[string]any:
		if flows, ok := v["flows"].([]any); ok {
			return flows
		}
	}
	return nil
}

func renderFlowList(flows []any) string {
	var sb strings.Builder
	sb.WriteString("Flows:\n\n")
	for _, item := range flows {
		flow, _ := item.(map[string]any)
		sb.WriteString(fmt.Sprintf("• %s\n", tools.String(flow, "name", "Unnamed")))
		sb.WriteString(fmt.Sprintf("  ID: %s\n", tools.Display(flow, "id")))
		if description := tools.String(flow, "description", ""); description != "" {
			sb.WriteString(fmt.Sprintf("  Description: %s\n", description))
		}
		sb.WriteString(fmt.Sprintf("  MCP Enabled: %s\n\n", tools.YesNo(flow["mcp_enabled"])))
	}
	return sb.String()
}

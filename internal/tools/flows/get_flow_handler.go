package flows

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
)

// GetFlowHandler returns a handler function for the get_flow tool
func GetFlowHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetFlow(ctx, request, deps)
	}
}

func handleGetFlow(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Flows == nil {
		errMessage := "flow service is not initialized"
		slog.Error(errMessage)
		return tools.ErrorText(errMessage), nil
	}
	deps.EmitToolEvent(GetFlowToolName)

	flowID, argErr := bindFlowID(GetFlowToolName, request)
	if argErr != nil {
		return tools.ArgumentErrorResult(argErr), nil
	}

	res := deps.Flows.Get(ctx, flowID)
	if res.Failed() {
		return tools.FailureResult(GetFlowToolName, res.Failure()), nil
	}

	flow, _ := res.Object()
	return mcp.NewToolResultText(renderFlowDetails(deps.Flows.DisplayURL(tools.String(flow, "id", flowID)), flow)), nil
}

func bindFlowID(tool string, request mcp.CallToolRequest) (string, *tools.ArgumentError) {
	var args FlowIDInput
	if err := request.BindArguments(&args); err != nil {
		return "", tools.BindError(tool, err)
	}
	if strings.TrimSpace(args.FlowID) == "" {
		return "", tools.MissingArgument(tool, "flow_id")
	}
	return args.FlowID, nil
}

func renderFlowDetails(displayURL string, flow map[string]any) string {
	data, _ := flow["data"].(map[string]any)
	nodes, _ := data["nodes"].([]any)
	edges, _ := data["edges"].([]any)

	var sb strings.Builder
	sb.WriteString("Flow Details:\n\n")
	sb.WriteString(fmt.Sprintf("Name: %s\n", tools.Display(flow, "name")))
	sb.WriteString(fmt.Sprintf("ID: %s\n", tools.Display(flow, "id")))
	sb.WriteString(fmt.Sprintf("Description: %s\n", tools.Display(flow, "description")))
	sb.WriteString(fmt.Sprintf("MCP Enabled: %s\n", tools.YesNo(flow["mcp_enabled"])))
	sb.WriteString(fmt.Sprintf("Updated: %s\n", tools.Display(flow, "updated_at")))
	sb.WriteString(fmt.Sprintf("Components: %d\n", len(nodes)))
	sb.WriteString(fmt.Sprintf("Connections: %d\n", len(edges)))
	sb.WriteString(fmt.Sprintf("URL: %s", displayURL))
	return sb.String()
}

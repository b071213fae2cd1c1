package flows

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
)

// UpdateFlowHandler returns a handler function for the update_flow tool
func UpdateFlowHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleUpdateFlow(ctx, request, deps)
	}
}

func handleUpdateFlow(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Flows == nil {
		errMessage := "flow service is not initialized"
		slog.Error(errMessage)
		return tools.ErrorText(errMessage), nil
	}
	deps.EmitToolEvent(UpdateFlowToolName)

	flowID, argErr := bindFlowID(UpdateFlowToolName, request)
	if argErr != nil {
		return tools.ArgumentErrorResult(argErr), nil
	}

	// Null values are kept here and dropped by the flow service.
	arguments := request.GetArguments()
	fields := make(map[string]any, len(updatableFields))
	for _, key := range updatableFields {
		if v, ok := arguments[key]; ok {
			fields[key] = v
		}
	}

	slog.Info("updating flow", "flowId", flowID, "fields", len(fields))

	res := deps.Flows.Update(ctx, flowID, fields)
	if res.Failed() {
		return tools.FailureResult(UpdateFlowToolName, res.Failure()), nil
	}

	text := fmt.Sprintf("Flow updated successfully!\n\nID: %s\nURL: %s", flowID, deps.Flows.DisplayURL(flowID))
	return mcp.NewToolResultText(text), nil
}

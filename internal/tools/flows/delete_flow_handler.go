package flows

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
)

// DeleteFlowHandler returns a handler function for the delete_flow tool
func DeleteFlowHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDeleteFlow(ctx, request, deps)
	}
}

func handleDeleteFlow(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Flows == nil {
		errMessage := "flow service is not initialized"
		slog.Error(errMessage)
		return tools.ErrorText(errMessage), nil
	}
	deps.EmitToolEvent(DeleteFlowToolName)

	flowID, argErr := bindFlowID(DeleteFlowToolName, request)
	if argErr != nil {
		return tools.ArgumentErrorResult(argErr), nil
	}

	slog.Info("deleting flow", "flowId", flowID)

	res := deps.Flows.Delete(ctx, flowID)
	if res.Failed() {
		return tools.FailureResult(DeleteFlowToolName, res.Failure()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Flow %s deleted successfully.", flowID)), nil
}

// DeleteFlowsHandler returns a handler function for the delete_flows tool
func DeleteFlowsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDeleteFlows(ctx, request, deps)
	}
}

func handleDeleteFlows(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Flows == nil {
		errMessage := "flow service is not initialized"
		slog.Error(errMessage)
		return tools.ErrorText(errMessage), nil
	}
	deps.EmitToolEvent(DeleteFlowsToolName)

	var args DeleteFlowsInput
	if err := request.BindArguments(&args); err != nil {
		return tools.ArgumentErrorResult(tools.BindError(DeleteFlowsToolName, err)), nil
	}
	if len(args.FlowIDs) == 0 {
		return tools.ArgumentErrorResult(tools.MissingArgument(DeleteFlowsToolName, "flow_ids")), nil
	}
	for _, id := range args.FlowIDs {
		if strings.TrimSpace(id) == "" {
			return tools.ArgumentErrorResult(&tools.ArgumentError{
				Tool:     DeleteFlowsToolName,
				Argument: "flow_ids",
				Reason:   "must not contain empty IDs",
			}), nil
		}
	}

	var failures []string
	deleted := 0
	for _, id := range args.FlowIDs {
		if ctx.Err() != nil {
			failures = append(failures, fmt.Sprintf("- %s: %v", id, ctx.Err()))
			continue
		}
		res := deps.Flows.Delete(ctx, id)
		if res.Failed() {
			slog.Warn("failed to delete flow", "flowId", id, "error", res.Failure().Message)
			failures = append(failures, fmt.Sprintf("- %s: %s", id, res.Failure().Message))
			continue
		}
		deleted++
	}

	slog.Info("bulk delete finished", "requested", len(args.FlowIDs), "deleted", deleted)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Deleted %d of %d flows.", deleted, len(args.FlowIDs)))
	if len(failures) > 0 {
		sb.WriteString("\n\nFailed:\n")
		sb.WriteString(strings.Join(failures, "\n"))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

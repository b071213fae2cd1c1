package flows

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mkd-neo4j/langflow-mcp/internal/langflow"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
)

// CreateFlowHandler returns a handler function for the create_flow tool
func CreateFlowHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCreateFlow(ctx, request, deps)
	}
}

func handleCreateFlow(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Flows == nil {
		errMessage := "flow service is not initialized"
		slog.Error(errMessage)
		return tools.ErrorText(errMessage), nil
	}
	deps.EmitToolEvent(CreateFlowToolName)

	args, argErr := bindCreateFlowInput(CreateFlowToolName, request)
	if argErr != nil {
		return tools.ArgumentErrorResult(argErr), nil
	}

	slog.Info("creating flow", "name", args.Name, "folderId", args.FolderID)

	res := deps.Flows.Create(ctx, langflow.CreateFlowParams{
		Name:        args.Name,
		Description: args.Description,
		FolderID:    args.FolderID,
		Data:        args.Data,
	})
	if res.Failed() {
		return tools.FailureResult(CreateFlowToolName, res.Failure()), nil
	}

	return mcp.NewToolResultText(renderCreatedFlow(deps.Flows, res)), nil
}

func bindCreateFlowInput(tool string, request mcp.CallToolRequest) (CreateFlowInput, *tools.ArgumentError) {
	var args CreateFlowInput
	if err := request.BindArguments(&args); err != nil {
		return args, tools.BindError(tool, err)
	}
	if strings.TrimSpace(args.Name) == "" {
		return args, tools.MissingArgument(tool, "name")
	}
	return args, nil
}

func renderCreatedFlow(flows langflow.FlowService, res langflow.Result) string {
	obj, _ := res.Object()
	flowID := tools.String(obj, "id", "unknown")

	var sb strings.Builder
	sb.WriteString("Flow created successfully!\n\n")
	sb.WriteString(fmt.Sprintf("ID: %s\n", flowID))
	sb.WriteString(fmt.Sprintf("Name: %s\n", tools.Display(obj, "name")))
	sb.WriteString(fmt.Sprintf("URL: %s", flows.DisplayURL(flowID)))
	return sb.String()
}

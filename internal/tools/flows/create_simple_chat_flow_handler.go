package flows

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mkd-neo4j/langflow-mcp/internal/langflow"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
)

const scaffoldNote = "\n\nThe flow graph is an empty scaffold (0 components, 0 connections). " +
	"Open the URL above to add components, or send a graph with update_flow."

// CreateSimpleChatFlowHandler returns a handler function for the create_simple_chat_flow tool.
// The graph is always created empty.
func CreateSimpleChatFlowHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCreateSimpleChatFlow(ctx, request, deps)
	}
}

func handleCreateSimpleChatFlow(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Flows == nil {
		errMessage := "flow service is not initialized"
		slog.Error(errMessage)
		return tools.ErrorText(errMessage), nil
	}
	deps.EmitToolEvent(CreateSimpleChatFlowToolName)

	args, argErr := bindCreateFlowInput(CreateSimpleChatFlowToolName, request)
	if argErr != nil {
		return tools.ArgumentErrorResult(argErr), nil
	}

	slog.Info("creating chat flow scaffold", "name", args.Name)

	res := deps.Flows.Create(ctx, langflow.CreateFlowParams{
		Name:        args.Name,
		Description: args.Description,
		FolderID:    args.FolderID,
		Data:        emptyGraph(),
	})
	if res.Failed() {
		return tools.FailureResult(CreateSimpleChatFlowToolName, res.Failure()), nil
	}

	return mcp.NewToolResultText(renderCreatedFlow(deps.Flows, res) + scaffoldNote), nil
}

func emptyGraph() map[string]any {
	return map[string]any{
		"nodes": []any{},
		"edges": []any{},
	}
}

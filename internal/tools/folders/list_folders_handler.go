package folders

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
)

// ListFoldersHandler returns a handler function for the list_folders tool
func ListFoldersHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if deps.Folders == nil {
			errMessage := "folder service is not initialized"
			slog.Error(errMessage)
			return tools.ErrorText(errMessage), nil
		}
		deps.EmitToolEvent(ListFoldersToolName)

		res := deps.Folders.ListAll(ctx)
		if res.Failed() {
			return tools.FailureResult(ListFoldersToolName, res.Failure()), nil
		}

		folders, _ := res.Body().([]any)
		if len(folders) == 0 {
			return mcp.NewToolResultText("No folders found."), nil
		}

		var sb strings.Builder
		sb.WriteString("Folders:\n\n")
		for _, item := range folders {
			folder, _ := item.(map[string]any)
			sb.WriteString(fmt.Sprintf("• %s\n", tools.String(folder, "name", "Unnamed")))
			sb.WriteString(fmt.Sprintf("  ID: %s\n", tools.Display(folder, "id")))
			if description := tools.String(folder, "description", ""); description != "" {
				sb.WriteString(fmt.Sprintf("  Description: %s\n", description))
			}
			sb.WriteString("\n")
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

package folders

import "github.com/mark3labs/mcp-go/mcp"

const ListFoldersToolName = "list_folders"

func ListFoldersSpec() mcp.Tool {
	return mcp.NewTool(ListFoldersToolName,
		mcp.WithDescription(`
		Lists the folders of the Langflow instance with their IDs.

		Use a folder ID as the folder_id argument of create_flow, list_flows
		or update_flow.`),
		mcp.WithTitleAnnotation("List Folders"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

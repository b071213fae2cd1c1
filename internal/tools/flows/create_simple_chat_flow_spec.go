package flows

import "github.com/mark3labs/mcp-go/mcp"

const CreateSimpleChatFlowToolName = "create_simple_chat_flow"

func CreateSimpleChatFlowSpec() mcp.Tool {
	return mcp.NewTool(CreateSimpleChatFlowToolName,
		mcp.WithDescription(`
		Creates a scaffold flow intended to become a chat flow.

		The flow is created with an empty graph (no nodes, no edges). Add the
		chat input, model and chat output components in the Langflow editor, or
		send a full graph later with update_flow.`),
		mcp.WithString("name",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Flow name"),
		),
		mcp.WithString("description",
			mcp.Description("Flow description"),
		),
		mcp.WithString("folder_id",
			mcp.Description("Folder ID where the flow is placed"),
		),
		mcp.WithTitleAnnotation("Create Chat Flow Scaffold"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

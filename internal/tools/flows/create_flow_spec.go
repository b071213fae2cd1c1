package flows

import "github.com/mark3labs/mcp-go/mcp"

const CreateFlowToolName = "create_flow"

func CreateFlowSpec() mcp.Tool {
	return mcp.NewTool(CreateFlowToolName,
		mcp.WithDescription(`
		Creates a new flow in Langflow.

		Returns the ID of the created flow, its name and the URL where it can be
		opened in the Langflow editor.

		The optional data argument is stored as the flow graph exactly as given
		(an object with "nodes" and "edges" arrays). When omitted the flow is
		created with an empty data object.`),
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
		mcp.WithObject("data",
			mcp.Description("Flow data structure with nodes and edges"),
		),
		mcp.WithTitleAnnotation("Create Flow"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

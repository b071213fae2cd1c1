package flows

import "github.com/mark3labs/mcp-go/mcp"

const (
	ListFlowsToolName = "list_flows"
	DefaultListLimit  = 50
)

func ListFlowsSpec() mcp.Tool {
	return mcp.NewTool(ListFlowsToolName,
		mcp.WithDescription(`
		Retrieves the list of flows with their IDs, names, descriptions and
		whether each flow is exposed as an MCP tool.

		All flows are fetched from Langflow and then cut to the first "limit"
		entries.`),
		mcp.WithString("folder_id",
			mcp.Description("Only list flows in this folder"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of flows to show (default: 50)"),
			mcp.DefaultNumber(DefaultListLimit),
			mcp.Min(0),
		),
		mcp.WithTitleAnnotation("List Flows"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

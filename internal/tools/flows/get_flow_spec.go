package flows

import "github.com/mark3labs/mcp-go/mcp"

const GetFlowToolName = "get_flow"

func GetFlowSpec() mcp.Tool {
	return mcp.NewTool(GetFlowToolName,
		mcp.WithDescription(`
		Retrieves detailed information about a specific flow: name, description,
		MCP status, last update time, and the number of components (nodes) and
		connections (edges) in its graph.`),
		mcp.WithString("flow_id",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Flow ID"),
		),
		mcp.WithTitleAnnotation("Get Flow"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

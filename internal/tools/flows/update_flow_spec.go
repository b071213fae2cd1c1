package flows

import "github.com/mark3labs/mcp-go/mcp"

const UpdateFlowToolName = "update_flow"

func UpdateFlowSpec() mcp.Tool {
	return mcp.NewTool(UpdateFlowToolName,
		mcp.WithDescription(`
		Updates an existing flow. Only the fields that are supplied change.

		A field passed as null is treated as not supplied: it can not be used to
		clear a value on the flow.`),
		mcp.WithString("flow_id",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Flow ID to update"),
		),
		mcp.WithString("name",
			mcp.Description("New flow name"),
		),
		mcp.WithString("description",
			mcp.Description("New flow description"),
		),
		mcp.WithObject("data",
			mcp.Description("New flow data structure with nodes and edges"),
		),
		mcp.WithBoolean("mcp_enabled",
			mcp.Description("Expose the flow as an MCP tool"),
		),
		mcp.WithString("folder_id",
			mcp.Description("Move the flow to this folder"),
		),
		mcp.WithTitleAnnotation("Update Flow"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

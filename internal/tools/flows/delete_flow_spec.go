package flows

import "github.com/mark3labs/mcp-go/mcp"

const (
	DeleteFlowToolName  = "delete_flow"
	DeleteFlowsToolName = "delete_flows"
)

func DeleteFlowSpec() mcp.Tool {
	return mcp.NewTool(DeleteFlowToolName,
		mcp.WithDescription("Deletes a flow by ID."),
		mcp.WithString("flow_id",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Flow ID to delete"),
		),
		mcp.WithTitleAnnotation("Delete Flow"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func DeleteFlowsSpec() mcp.Tool {
	return mcp.NewTool(DeleteFlowsToolName,
		mcp.WithDescription(`
		Deletes several flows. Each ID is deleted with its own request, in the
		order given; a failure for one ID does not stop the others.

		Returns how many flows were deleted and the error for each one that
		was not.`),
		mcp.WithArray("flow_ids",
			mcp.Required(),
			mcp.MinItems(1),
			mcp.Items(map[string]any{"type": "string"}),
			mcp.Description("IDs of the flows to delete"),
		),
		mcp.WithTitleAnnotation("Delete Flows"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

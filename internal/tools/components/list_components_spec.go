package components

import "github.com/mark3labs/mcp-go/mcp"

const ListComponentsToolName = "list_components"

func ListComponentsSpec() mcp.Tool {
	return mcp.NewTool(ListComponentsToolName,
		mcp.WithDescription(`
		Lists all available components that can be added to flows
		(e.g., ChatInput, ChatOutput, OpenAI, etc.), grouped by category.`),
		mcp.WithTitleAnnotation("List Components"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

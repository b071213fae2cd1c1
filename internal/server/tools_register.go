package server

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools/components"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools/flows"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools/folders"
)

// registerTools registers all enabled MCP tools and adds them to the provided MCP server.
// Tools are filtered according to the server configuration. When read-only mode is enabled
// (LANGFLOW_READ_ONLY or Config.ReadOnly), any tool that mutates flows is excluded.
// Note: the filter relies on the readonly flag of the ToolDefinition, which mirrors the
// ReadOnlyHint annotation of the tool spec.
func (s *LangflowMCPServer) registerTools() error {
	enabled := s.getEnabledTools()
	s.MCPServer.AddTools(enabled...)
	s.registry = NewRegistry(enabled)
	return nil
}

type toolFilter func(tools []ToolDefinition) []ToolDefinition

type toolCategory int

const (
	flowCategory      toolCategory = 0
	componentCategory toolCategory = 1
	folderCategory    toolCategory = 2
	scaffoldCategory  toolCategory = 3 // Flows created with an empty graph
)

type ToolDefinition struct {
	category   toolCategory
	definition server.ServerTool
	readonly   bool
}

func (s *LangflowMCPServer) getEnabledTools() []server.ServerTool {
	filters := make([]toolFilter, 0)

	// If read-only mode is enabled, expose only tools annotated as read-only.
	if s.config != nil && s.config.ReadOnly {
		filters = append(filters, filterWriteTools)
	}
	toolDefs := getAllToolsDefs(s.deps)

	for _, filter := range filters {
		toolDefs = filter(toolDefs)
	}
	enabledTools := make([]server.ServerTool, 0, len(toolDefs))
	for _, toolDef := range toolDefs {
		enabledTools = append(enabledTools, toolDef.definition)
	}
	return enabledTools
}

func filterWriteTools(tools []ToolDefinition) []ToolDefinition {
	readOnlyTools := make([]ToolDefinition, 0, len(tools))
	for _, t := range tools {
		if t.readonly {
			readOnlyTools = append(readOnlyTools, t)
		}
	}
	return readOnlyTools
}

// getAllToolsDefs returns all available tools with their specs and handlers
func getAllToolsDefs(deps *tools.ToolDependencies) []ToolDefinition {
	return []ToolDefinition{
		{
			category: flowCategory,
			definition: server.ServerTool{
				Tool:    flows.CreateFlowSpec(),
				Handler: flows.CreateFlowHandler(deps),
			},
			readonly: false,
		},
		{
			category: flowCategory,
			definition: server.ServerTool{
				Tool:    flows.ListFlowsSpec(),
				Handler: flows.ListFlowsHandler(deps),
			},
			readonly: true,
		},
		{
			category: flowCategory,
			definition: server.ServerTool{
				Tool:    flows.GetFlowSpec(),
				Handler: flows.GetFlowHandler(deps),
			},
			readonly: true,
		},
		{
			category: flowCategory,
			definition: server.ServerTool{
				Tool:    flows.UpdateFlowSpec(),
				Handler: flows.UpdateFlowHandler(deps),
			},
			readonly: false,
		},
		{
			category: flowCategory,
			definition: server.ServerTool{
				Tool:    flows.DeleteFlowSpec(),
				Handler: flows.DeleteFlowHandler(deps),
			},
			readonly: false,
		},
		{
			category: flowCategory,
			definition: server.ServerTool{
				Tool:    flows.DeleteFlowsSpec(),
				Handler: flows.DeleteFlowsHandler(deps),
			},
			readonly: false,
		},
		// Components Category/Section
		{
			category: componentCategory,
			definition: server.ServerTool{
				Tool:    components.ListComponentsSpec(),
				Handler: components.ListComponentsHandler(deps),
			},
			readonly: true,
		},
		// Folders Category/Section
		{
			category: folderCategory,
			definition: server.ServerTool{
				Tool:    folders.ListFoldersSpec(),
				Handler: folders.ListFoldersHandler(deps),
			},
			readonly: true,
		},
		// Scaffold Category/Section
		{
			category: scaffoldCategory,
			definition: server.ServerTool{
				Tool:    flows.CreateSimpleChatFlowSpec(),
				Handler: flows.CreateSimpleChatFlowHandler(deps),
			},
			readonly: false,
		},
	}
}

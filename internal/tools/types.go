package tools

import (
	"github.com/mkd-neo4j/langflow-mcp/internal/analytics"
	"github.com/mkd-neo4j/langflow-mcp/internal/langflow"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	Flows            langflow.FlowService
	Components       langflow.ComponentService
	Folders          langflow.FolderService
	AnalyticsService analytics.Service
}

// EmitToolEvent records a tool invocation when analytics is configured.
func (d *ToolDependencies) EmitToolEvent(toolName string) {
	if d.AnalyticsService == nil {
		return
	}
	d.AnalyticsService.EmitEvent(d.AnalyticsService.NewToolsEvent(toolName))
}

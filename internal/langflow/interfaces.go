package langflow

//go:generate mockgen -destination=mocks/mock_langflow.go -package=langflow_mocks github.com/mkd-neo4j/langflow-mcp/internal/langflow Executor,FlowService,ComponentService,FolderService

import (
	"context"
)

// Executor performs one remote call and normalises the outcome.
type Executor interface {
	Call(ctx context.Context, method, path string, body any, query map[string]string) Result
}

// FlowService manages flow records on the Langflow instance.
type FlowService interface {
	Create(ctx context.Context, params CreateFlowParams) Result
	List(ctx context.Context, folderID string) Result
	Get(ctx context.Context, flowID string) Result
	Update(ctx context.Context, flowID string, fields map[string]any) Result
	Delete(ctx context.Context, flowID string) Result
	DisplayURL(flowID string) string
}

// ComponentService reads the component catalog.
type ComponentService interface {
	ListAll(ctx context.Context) Result
}

// FolderService reads the folders of the instance.
type FolderService interface {
	ListAll(ctx context.Context) Result
}

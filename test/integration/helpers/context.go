//go:build integration

package helpers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mkd-neo4j/langflow-mcp/internal/analytics"
	"github.com/mkd-neo4j/langflow-mcp/internal/config"
	"github.com/mkd-neo4j/langflow-mcp/internal/langflow"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
)

type ToolHandler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// TestContext wires the real Langflow client into tool dependencies for one
// test and deletes every flow the test registered on cleanup.
type TestContext struct {
	T       *testing.T
	Ctx     context.Context
	Config  *config.Config
	Deps    *tools.ToolDependencies
	flowIDs []string
}

func NewTestContext(t *testing.T, lf *LangflowContainer) *TestContext {
	t.Helper()

	cfg := &config.Config{
		BaseURL:   lf.BaseURL,
		APIKey:    lf.APIKey,
		Timeout:   30 * time.Second,
		Transport: config.TransportStdio,
	}
	client := langflow.NewClient(cfg)

	tc := &TestContext{
		T:      t,
		Ctx:    context.Background(),
		Config: cfg,
		Deps: &tools.ToolDependencies{
			Flows:            langflow.NewFlowManager(client, cfg.BaseURL),
			Components:       langflow.NewComponentCatalog(client),
			Folders:          langflow.NewFolderCatalog(client),
			AnalyticsService: analytics.NewTracker(nil, false),
		},
	}
	t.Cleanup(tc.cleanup)
	return tc
}

// UniqueName returns a flow name that no other test uses.
func (tc *TestContext) UniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// TrackFlow registers a flow for deletion when the test ends.
func (tc *TestContext) TrackFlow(flowID string) {
	tc.flowIDs = append(tc.flowIDs, flowID)
}

// CallTool invokes a handler and returns its single text block.
func (tc *TestContext) CallTool(handler ToolHandler, args map[string]any) string {
	tc.T.Helper()

	request := mcp.CallToolRequest{}
	request.Params.Arguments = args

	res, err := handler(tc.Ctx, request)
	if err != nil {
		tc.T.Fatalf("tool handler returned an error: %v", err)
	}
	if res == nil || len(res.Content) != 1 {
		tc.T.Fatalf("expected exactly one content block, got %+v", res)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		tc.T.Fatalf("expected a text block, got %T", res.Content[0])
	}
	return text.Text
}

// MustSucceed fails the test when the rendered text carries the error marker.
func (tc *TestContext) MustSucceed(text string) string {
	tc.T.Helper()
	if strings.HasPrefix(text, tools.ErrorPrefix) {
		tc.T.Fatalf("tool call failed: %s", text)
	}
	return text
}

// Field returns the value of a "Key: value" line of a rendered block.
func Field(text, key string) string {
	prefix := key + ": "
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefix) {
			return strings.TrimPrefix(line, prefix)
		}
	}
	return ""
}

func (tc *TestContext) cleanup() {
	for _, id := range tc.flowIDs {
		res := tc.Deps.Flows.Delete(context.Background(), id)
		if res.Failed() && res.Failure().StatusCode != 404 {
			tc.T.Logf("failed to delete flow %s: %s", id, res.Failure().Message)
		}
	}
}

package flows_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	analytics "github.com/mkd-neo4j/langflow-mcp/internal/analytics/mocks"
	"github.com/mkd-neo4j/langflow-mcp/internal/langflow"
	langflow_mocks "github.com/mkd-neo4j/langflow-mcp/internal/langflow/mocks"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools/flows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const baseURL = "https://h.example"

func newRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected a text block")
	return text.Text
}

func newDeps(ctrl *gomock.Controller) (*tools.ToolDependencies, *langflow_mocks.MockFlowService) {
	analyticsService := analytics.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent(gomock.Any()).AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	flowService := langflow_mocks.NewMockFlowService(ctrl)
	flowService.EXPECT().
		DisplayURL(gomock.Any()).
		DoAndReturn(func(id string) string { return baseURL + "/flow/" + id }).
		AnyTimes()

	return &tools.ToolDependencies{Flows: flowService, AnalyticsService: analyticsService}, flowService
}

func notFound() langflow.Result {
	return langflow.Fail(&langflow.Failure{Message: `HTTP 404: {"detail":"not found"}`, StatusCode: 404})
}

func TestCreateFlowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("renders id, name and display URL", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().
			Create(gomock.Any(), langflow.CreateFlowParams{Name: "Demo"}).
			Return(langflow.Success(map[string]any{"id": "abc123", "name": "Demo"}))

		result, err := flows.CreateFlowHandler(deps)(context.Background(), newRequest(map[string]any{"name": "Demo"}))

		require.NoError(t, err)
		assert.Equal(t, "Flow created successfully!\n\nID: abc123\nName: Demo\nURL: https://h.example/flow/abc123", resultText(t, result))
	})

	t.Run("passes folder and data through", func(t *testing.T) {
		data := map[string]any{"nodes": []any{map[string]any{"id": "n1"}}, "edges": []any{}}
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().
			Create(gomock.Any(), langflow.CreateFlowParams{Name: "Demo", Description: "d", FolderID: "f1", Data: data}).
			Return(langflow.Success(map[string]any{"id": "abc123", "name": "Demo"}))

		_, err := flows.CreateFlowHandler(deps)(context.Background(), newRequest(map[string]any{
			"name":        "Demo",
			"description": "d",
			"folder_id":   "f1",
			"data":        data,
		}))

		require.NoError(t, err)
	})

	t.Run("missing id in response renders unknown", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(langflow.Success(map[string]any{"status": "success"}))

		result, _ := flows.CreateFlowHandler(deps)(context.Background(), newRequest(map[string]any{"name": "Demo"}))

		text := resultText(t, result)
		assert.Contains(t, text, "ID: unknown\n")
		assert.Contains(t, text, "Name: None\n")
	})

	t.Run("missing name never reaches langflow", func(t *testing.T) {
		deps, _ := newDeps(ctrl)

		result, err := flows.CreateFlowHandler(deps)(context.Background(), newRequest(map[string]any{"description": "d"}))

		require.NoError(t, err)
		text := resultText(t, result)
		assert.True(t, strings.HasPrefix(text, tools.ErrorPrefix), text)
		assert.Contains(t, text, `"name"`)
	})

	t.Run("wrong data shape is an argument error", func(t *testing.T) {
		deps, _ := newDeps(ctrl)

		result, _ := flows.CreateFlowHandler(deps)(context.Background(), newRequest(map[string]any{"name": "Demo", "data": "nodes"}))

		assert.True(t, strings.HasPrefix(resultText(t, result), tools.ErrorPrefix))
	})

	t.Run("remote failure is rendered with the error marker", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(langflow.Fail(&langflow.Failure{Message: "Request failed: connection refused"}))

		result, err := flows.CreateFlowHandler(deps)(context.Background(), newRequest(map[string]any{"name": "Demo"}))

		require.NoError(t, err)
		assert.Equal(t, "Error: Request failed: connection refused", resultText(t, result))
	})

	t.Run("nil flow service", func(t *testing.T) {
		result, err := flows.CreateFlowHandler(&tools.ToolDependencies{})(context.Background(), newRequest(map[string]any{"name": "Demo"}))

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(resultText(t, result), tools.ErrorPrefix))
	})
}

func TestCreateSimpleChatFlowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, flowService := newDeps(ctrl)
	flowService.EXPECT().
		Create(gomock.Any(), langflow.CreateFlowParams{
			Name: "Chat",
			Data: map[string]any{"nodes": []any{}, "edges": []any{}},
		}).
		Return(langflow.Success(map[string]any{"id": "c1", "name": "Chat"}))

	result, err := flows.CreateSimpleChatFlowHandler(deps)(context.Background(), newRequest(map[string]any{"name": "Chat"}))

	require.NoError(t, err)
	text := resultText(t, result)
	assert.True(t, strings.HasPrefix(text, "Flow created successfully!\n\nID: c1\nName: Chat\nURL: https://h.example/flow/c1"))
	assert.Contains(t, text, "empty scaffold")
}

func TestListFlowsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	threeFlows := []any{
		map[string]any{"id": "1", "name": "One", "description": "first", "mcp_enabled": true},
		map[string]any{"id": "2", "name": "Two", "description": "", "mcp_enabled": false},
		map[string]any{"id": "3"},
	}

	t.Run("bare sequence is truncated to limit", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().List(gomock.Any(), "").Return(langflow.Success(threeFlows))

		result, err := flows.ListFlowsHandler(deps)(context.Background(), newRequest(map[string]any{"limit": 2}))

		require.NoError(t, err)
		assert.Equal(t,
			"Flows:\n\n"+
				"• One\n  ID: 1\n  Description: first\n  MCP Enabled: Yes\n\n"+
				"• Two\n  ID: 2\n  MCP Enabled: No\n\n",
			resultText(t, result))
	})

	t.Run("object with flows field", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().List(gomock.Any(), "f1").Return(langflow.Success(map[string]any{"flows": threeFlows}))

		result, _ := flows.ListFlowsHandler(deps)(context.Background(), newRequest(map[string]any{"folder_id": "f1"}))

		text := resultText(t, result)
		assert.Equal(t, 3, strings.Count(text, "• "))
		assert.Contains(t, text, "• Unnamed\n  ID: 3\n")
	})

	t.Run("empty sequence renders the no flows message", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().List(gomock.Any(), "").Return(langflow.Success([]any{}))

		result, _ := flows.ListFlowsHandler(deps)(context.Background(), newRequest(nil))

		assert.Equal(t, "No flows found.", resultText(t, result))
	})

	t.Run("limit zero renders the no flows message", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().List(gomock.Any(), "").Return(langflow.Success(threeFlows))

		result, _ := flows.ListFlowsHandler(deps)(context.Background(), newRequest(map[string]any{"limit": 0}))

		assert.Equal(t, "No flows found.", resultText(t, result))
	})

	t.Run("unexpected body shape renders the no flows message", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().List(gomock.Any(), "").Return(langflow.Success(map[string]any{"status": "success"}))

		result, _ := flows.ListFlowsHandler(deps)(context.Background(), newRequest(nil))

		assert.Equal(t, "No flows found.", resultText(t, result))
	})

	t.Run("negative limit is rejected", func(t *testing.T) {
		deps, _ := newDeps(ctrl)

		result, _ := flows.ListFlowsHandler(deps)(context.Background(), newRequest(map[string]any{"limit": -1}))

		assert.True(t, strings.HasPrefix(resultText(t, result), tools.ErrorPrefix))
	})

	t.Run("default limit is fifty", func(t *testing.T) {
		many := make([]any, 60)
		for i := range many {
			many[i] = map[string]any{"id": "x", "name": "n"}
		}
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().List(gomock.Any(), "").Return(langflow.Success(many))

		result, _ := flows.ListFlowsHandler(deps)(context.Background(), newRequest(nil))

		assert.Equal(t, flows.DefaultListLimit, strings.Count(resultText(t, result), "• "))
	})
}

func TestGetFlowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("renders flow details", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().Get(gomock.Any(), "abc").Return(langflow.Success(map[string]any{
			"id":          "abc",
			"name":        "Demo",
			"description": nil,
			"mcp_enabled": true,
			"updated_at":  "2024-01-01T00:00:00",
			"data": map[string]any{
				"nodes": []any{map[string]any{}, map[string]any{}},
				"edges": []any{map[string]any{}},
			},
		}))

		result, err := flows.GetFlowHandler(deps)(context.Background(), newRequest(map[string]any{"flow_id": "abc"}))

		require.NoError(t, err)
		assert.Equal(t,
			"Flow Details:\n\n"+
				"Name: Demo\n"+
				"ID: abc\n"+
				"Description: None\n"+
				"MCP Enabled: Yes\n"+
				"Updated: 2024-01-01T00:00:00\n"+
				"Components: 2\n"+
				"Connections: 1\n"+
				"URL: https://h.example/flow/abc",
			resultText(t, result))
	})

	t.Run("404 renders the error marker", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().Get(gomock.Any(), "missing-id").Return(notFound())

		result, err := flows.GetFlowHandler(deps)(context.Background(), newRequest(map[string]any{"flow_id": "missing-id"}))

		require.NoError(t, err)
		text := resultText(t, result)
		assert.True(t, strings.HasPrefix(text, tools.ErrorPrefix), text)
		assert.Contains(t, text, "404")
	})

	t.Run("missing flow_id", func(t *testing.T) {
		deps, _ := newDeps(ctrl)

		result, _ := flows.GetFlowHandler(deps)(context.Background(), newRequest(map[string]any{"flow_id": ""}))

		assert.True(t, strings.HasPrefix(resultText(t, result), tools.ErrorPrefix))
	})
}

func TestUpdateFlowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("forwards only known fields", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().
			Update(gomock.Any(), "abc", map[string]any{"name": "n", "mcp_enabled": false, "description": nil}).
			Return(langflow.Success(map[string]any{"id": "abc"}))

		result, err := flows.UpdateFlowHandler(deps)(context.Background(), newRequest(map[string]any{
			"flow_id":     "abc",
			"name":        "n",
			"mcp_enabled": false,
			"description": nil,
			"unrelated":   "ignored",
		}))

		require.NoError(t, err)
		assert.Equal(t, "Flow updated successfully!\n\nID: abc\nURL: https://h.example/flow/abc", resultText(t, result))
	})

	t.Run("missing flow_id", func(t *testing.T) {
		deps, _ := newDeps(ctrl)

		result, _ := flows.UpdateFlowHandler(deps)(context.Background(), newRequest(map[string]any{"name": "n"}))

		assert.True(t, strings.HasPrefix(resultText(t, result), tools.ErrorPrefix))
	})

	t.Run("remote failure", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().Update(gomock.Any(), "abc", gomock.Any()).Return(notFound())

		result, _ := flows.UpdateFlowHandler(deps)(context.Background(), newRequest(map[string]any{"flow_id": "abc"}))

		assert.Equal(t, `Error: HTTP 404: {"detail":"not found"}`, resultText(t, result))
	})
}

func TestDeleteFlowHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("delete_flow confirms the id", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		flowService.EXPECT().Delete(gomock.Any(), "abc").Return(langflow.Success(map[string]any{"status": "success"}))

		result, err := flows.DeleteFlowHandler(deps)(context.Background(), newRequest(map[string]any{"flow_id": "abc"}))

		require.NoError(t, err)
		assert.Equal(t, "Flow abc deleted successfully.", resultText(t, result))
	})

	t.Run("delete_flows reports each failure and keeps going", func(t *testing.T) {
		deps, flowService := newDeps(ctrl)
		gomock.InOrder(
			flowService.EXPECT().Delete(gomock.Any(), "a").Return(langflow.Success(map[string]any{"status": "success"})),
			flowService.EXPECT().Delete(gomock.Any(), "b").Return(notFound()),
			flowService.EXPECT().Delete(gomock.Any(), "c").Return(langflow.Success(map[string]any{"status": "success"})),
		)

		result, err := flows.DeleteFlowsHandler(deps)(context.Background(), newRequest(map[string]any{
			"flow_ids": []any{"a", "b", "c"},
		}))

		require.NoError(t, err)
		assert.Equal(t,
			"Deleted 2 of 3 flows.\n\nFailed:\n- b: HTTP 404: {\"detail\":\"not found\"}",
			resultText(t, result))
	})

	t.Run("delete_flows requires at least one id", func(t *testing.T) {
		deps, _ := newDeps(ctrl)

		result, _ := flows.DeleteFlowsHandler(deps)(context.Background(), newRequest(map[string]any{"flow_ids": []any{}}))

		assert.True(t, strings.HasPrefix(resultText(t, result), tools.ErrorPrefix))
	})

	t.Run("delete_flows rejects empty ids before any call", func(t *testing.T) {
		deps, _ := newDeps(ctrl)

		result, _ := flows.DeleteFlowsHandler(deps)(context.Background(), newRequest(map[string]any{"flow_ids": []any{"a", " "}}))

		assert.True(t, strings.HasPrefix(resultText(t, result), tools.ErrorPrefix))
	})
}

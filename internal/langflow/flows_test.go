package langflow_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/mkd-neo4j/langflow-mcp/internal/langflow"
	langflow_mocks "github.com/mkd-neo4j/langflow-mcp/internal/langflow/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const baseURL = "https://h.example"

func TestFlowManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("create sends name, description and empty data", func(t *testing.T) {
		exec := langflow_mocks.NewMockExecutor(ctrl)
		exec.EXPECT().
			Call(gomock.Any(), http.MethodPost, "/api/v1/flows/", map[string]any{
				"name":        "Demo",
				"description": "",
				"data":        map[string]any{},
			}, gomock.Nil()).
			Return(langflow.Success(map[string]any{"id": "abc123"})).
			Times(1)

		res := langflow.NewFlowManager(exec, baseURL).Create(context.Background(), langflow.CreateFlowParams{Name: "Demo"})

		assert.False(t, res.Failed())
	})

	t.Run("create includes folder_id only when present", func(t *testing.T) {
		data := map[string]any{"nodes": []any{}, "edges": []any{}}
		exec := langflow_mocks.NewMockExecutor(ctrl)
		exec.EXPECT().
			Call(gomock.Any(), http.MethodPost, "/api/v1/flows/", map[string]any{
				"name":        "Demo",
				"description": "d",
				"data":        data,
				"folder_id":   "folder-1",
			}, gomock.Nil()).
			Return(langflow.Success(map[string]any{"id": "abc123"}))

		langflow.NewFlowManager(exec, baseURL).Create(context.Background(), langflow.CreateFlowParams{
			Name:        "Demo",
			Description: "d",
			FolderID:    "folder-1",
			Data:        data,
		})
	})

	t.Run("list sends folder filter as query", func(t *testing.T) {
		exec := langflow_mocks.NewMockExecutor(ctrl)
		exec.EXPECT().
			Call(gomock.Any(), http.MethodGet, "/api/v1/flows/", gomock.Nil(), map[string]string{"folder_id": "f1"}).
			Return(langflow.Success([]any{}))

		langflow.NewFlowManager(exec, baseURL).List(context.Background(), "f1")
	})

	t.Run("list without folder sends empty query", func(t *testing.T) {
		exec := langflow_mocks.NewMockExecutor(ctrl)
		exec.EXPECT().
			Call(gomock.Any(), http.MethodGet, "/api/v1/flows/", gomock.Nil(), map[string]string{}).
			Return(langflow.Success([]any{}))

		langflow.NewFlowManager(exec, baseURL).List(context.Background(), "")
	})

	t.Run("get, delete address the flow path", func(t *testing.T) {
		exec := langflow_mocks.NewMockExecutor(ctrl)
		exec.EXPECT().
			Call(gomock.Any(), http.MethodGet, "/api/v1/flows/abc", gomock.Nil(), gomock.Nil()).
			Return(langflow.Success(map[string]any{"id": "abc"}))
		exec.EXPECT().
			Call(gomock.Any(), http.MethodDelete, "/api/v1/flows/abc", gomock.Nil(), gomock.Nil()).
			Return(langflow.Success(map[string]any{"status": "success"}))

		m := langflow.NewFlowManager(exec, baseURL)
		m.Get(context.Background(), "abc")
		m.Delete(context.Background(), "abc")
	})

	t.Run("flow id is path escaped", func(t *testing.T) {
		exec := langflow_mocks.NewMockExecutor(ctrl)
		exec.EXPECT().
			Call(gomock.Any(), http.MethodGet, "/api/v1/flows/a%2Fb", gomock.Nil(), gomock.Nil()).
			Return(langflow.Success(map[string]any{}))

		langflow.NewFlowManager(exec, baseURL).Get(context.Background(), "a/b")
	})

	t.Run("update strips null fields", func(t *testing.T) {
		exec := langflow_mocks.NewMockExecutor(ctrl)
		exec.EXPECT().
			Call(gomock.Any(), http.MethodPatch, "/api/v1/flows/x", map[string]any{"name": "n"}, gomock.Nil()).
			Return(langflow.Success(map[string]any{"id": "x"}))

		langflow.NewFlowManager(exec, baseURL).Update(context.Background(), "x", map[string]any{
			"name":        "n",
			"description": nil,
		})
	})

	t.Run("failures are returned unmodified", func(t *testing.T) {
		failure := &langflow.Failure{Message: "HTTP 404: {\"detail\":\"not found\"}", StatusCode: 404}
		exec := langflow_mocks.NewMockExecutor(ctrl)
		exec.EXPECT().
			Call(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(langflow.Fail(failure))

		res := langflow.NewFlowManager(exec, baseURL).Get(context.Background(), "missing-id")

		assert.True(t, res.Failed())
		assert.Same(t, failure, res.Failure())
	})

	t.Run("display URL", func(t *testing.T) {
		m := langflow.NewFlowManager(langflow_mocks.NewMockExecutor(ctrl), baseURL)
		assert.Equal(t, "https://h.example/flow/abc123", m.DisplayURL("abc123"))
	})
}

func TestComponentCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := langflow_mocks.NewMockExecutor(ctrl)
	exec.EXPECT().
		Call(gomock.Any(), http.MethodGet, "/api/v1/all", gomock.Nil(), gomock.Nil()).
		Return(langflow.Success(map[string]any{"inputs": map[string]any{}})).
		Times(2)

	catalog := langflow.NewComponentCatalog(exec)
	// Not cached: each call reaches the executor.
	catalog.ListAll(context.Background())
	catalog.ListAll(context.Background())
}

func TestStripNulls(t *testing.T) {
	in := map[string]any{"name": "n", "description": nil, "mcp_enabled": false}
	out := langflow.StripNulls(in)

	assert.Equal(t, map[string]any{"name": "n", "mcp_enabled": false}, out)
	assert.Len(t, in, 3, "input is not modified")
}

func TestFolderCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := langflow_mocks.NewMockExecutor(ctrl)
	exec.EXPECT().
		Call(gomock.Any(), http.MethodGet, "/api/v1/folders/", gomock.Nil(), gomock.Nil()).
		Return(langflow.Success([]any{}))

	res := langflow.NewFolderCatalog(exec).ListAll(context.Background())

	assert.Equal(t, []any{}, res.Body())
}

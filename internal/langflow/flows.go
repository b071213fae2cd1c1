package langflow

import (
	"context"
	"net/http"
	"net/url"
)

const flowsPath = "/api/v1/flows/"

// CreateFlowParams are the inputs of a flow creation. Data is sent as an
// empty object when nil.
type CreateFlowParams struct {
	Name        string
	Description string
	FolderID    string
	Data        map[string]any
}

// FlowManager implements FlowService on top of an Executor.
// Results are returned exactly as the executor produced them.
type FlowManager struct {
	exec    Executor
	baseURL string
}

// NewFlowManager creates a flow manager. baseURL is only used to build display URLs.
func NewFlowManager(exec Executor, baseURL string) *FlowManager {
	return &FlowManager{exec: exec, baseURL: baseURL}
}

func (m *FlowManager) Create(ctx context.Context, params CreateFlowParams) Result {
	data := params.Data
	if data == nil {
		data = map[string]any{}
	}
	payload := map[string]any{
		"name":        params.Name,
		"description": params.Description,
		"data":        data,
	}
	if params.FolderID != "" {
		payload["folder_id"] = params.FolderID
	}
	return m.exec.Call(ctx, http.MethodPost, flowsPath, payload, nil)
}

// List fetches every flow, optionally filtered by folder. Any limit is
// applied by the caller on the returned sequence.
func (m *FlowManager) List(ctx context.Context, folderID string) Result {
	query := map[string]string{}
	if folderID != "" {
		query["folder_id"] = folderID
	}
	return m.exec.Call(ctx, http.MethodGet, flowsPath, nil, query)
}

func (m *FlowManager) Get(ctx context.Context, flowID string) Result {
	return m.exec.Call(ctx, http.MethodGet, flowPath(flowID), nil, nil)
}

// Update sends a partial update. Entries with a nil value are dropped, so a
// field can not be cleared by passing null.
func (m *FlowManager) Update(ctx context.Context, flowID string, fields map[string]any) Result {
	return m.exec.Call(ctx, http.MethodPatch, flowPath(flowID), StripNulls(fields), nil)
}

func (m *FlowManager) Delete(ctx context.Context, flowID string) Result {
	return m.exec.Call(ctx, http.MethodDelete, flowPath(flowID), nil, nil)
}

// DisplayURL returns the editor URL of a flow. It performs no network call.
func (m *FlowManager) DisplayURL(flowID string) string {
	return m.baseURL + "/flow/" + flowID
}

// StripNulls returns a copy of fields without nil values.
func StripNulls(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}

func flowPath(flowID string) string {
	return flowsPath + url.PathEscape(flowID)
}

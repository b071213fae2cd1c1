package flows

// CreateFlowInput defines the arguments of create_flow and create_simple_chat_flow.
type CreateFlowInput struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	FolderID    string         `json:"folder_id"`
	Data        map[string]any `json:"data"`
}

// ListFlowsInput defines the arguments of list_flows. A nil Limit means the default.
type ListFlowsInput struct {
	FolderID string `json:"folder_id"`
	Limit    *int   `json:"limit"`
}

// FlowIDInput defines the arguments of the single-flow tools.
type FlowIDInput struct {
	FlowID string `json:"flow_id"`
}

// DeleteFlowsInput defines the arguments of delete_flows.
type DeleteFlowsInput struct {
	FlowIDs []string `json:"flow_ids"`
}

// updatableFields are the flow fields update_flow forwards. Other arguments are ignored.
var updatableFields = []string{"name", "description", "data", "mcp_enabled", "folder_id"}

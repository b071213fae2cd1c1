package langflow

import (
	"context"
	"net/http"
)

const foldersPath = "/api/v1/folders/"

// FolderCatalog lists the folders flows can be placed in.
type FolderCatalog struct {
	exec Executor
}

func NewFolderCatalog(exec Executor) *FolderCatalog {
	return &FolderCatalog{exec: exec}
}

func (c *FolderCatalog) ListAll(ctx context.Context) Result {
	return c.exec.Call(ctx, http.MethodGet, foldersPath, nil, nil)
}

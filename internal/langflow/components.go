package langflow

import (
	"context"
	"net/http"
)

const componentsPath = "/api/v1/all"

// ComponentCatalog reads the categorised set of building blocks. Nothing is cached.
type ComponentCatalog struct {
	exec Executor
}

func NewComponentCatalog(exec Executor) *ComponentCatalog {
	return &ComponentCatalog{exec: exec}
}

func (c *ComponentCatalog) ListAll(ctx context.Context) Result {
	return c.exec.Call(ctx, http.MethodGet, componentsPath, nil, nil)
}

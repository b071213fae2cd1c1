package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mkd-neo4j/langflow-mcp/internal/config"
)

// version is set during build time
var version = "dev"

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "langflow-mcp: %v\n", err)
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintln(os.Stderr, "Set LANGFLOW_BASE_URL and LANGFLOW_API_KEY in the environment or in a .env file.")
		}
		os.Exit(1)
	}
}

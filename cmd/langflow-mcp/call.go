package main

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func newCallCommand(opts *rootOptions) *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Invoke one tool and print its result",
		Example: `  langflow-mcp call list_flows --args '{"limit": 5}'
  langflow-mcp call get_flow --args '{"flow_id": "abc123"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arguments := map[string]any{}
			if rawArgs != "" {
				if err := json.Unmarshal([]byte(rawArgs), &arguments); err != nil {
					return fmt.Errorf("--args must be a JSON object: %w", err)
				}
			}

			srv, _, err := bootstrap(cmd, opts)
			if err != nil {
				return err
			}

			result := srv.Registry().Invoke(cmd.Context(), args[0], arguments)
			for _, content := range result.Content {
				if text, ok := content.(mcp.TextContent); ok {
					fmt.Fprintln(cmd.OutOrStdout(), text.Text)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rawArgs, "args", "", "tool arguments as a JSON object")
	return cmd
}

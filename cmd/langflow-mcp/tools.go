package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newToolsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools the server exposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, cfg, err := bootstrap(cmd, opts)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tREAD-ONLY")
			for _, tool := range srv.Registry().List() {
				readOnly := "no"
				if hint := tool.Annotations.ReadOnlyHint; hint != nil && *hint {
					readOnly = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", tool.Name, tool.Annotations.Title, readOnly)
			}
			if cfg.ReadOnly {
				fmt.Fprintln(w, "\nread-only mode: tools that modify flows are hidden")
			}
			return w.Flush()
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "langflow-mcp version %s\n", version)
		},
	}
}

package main

import (
	"fmt"

	"github.com/mkd-neo4j/langflow-mcp/internal/analytics"
	"github.com/mkd-neo4j/langflow-mcp/internal/config"
	"github.com/mkd-neo4j/langflow-mcp/internal/langflow"
	"github.com/mkd-neo4j/langflow-mcp/internal/logger"
	"github.com/mkd-neo4j/langflow-mcp/internal/server"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configFile string
	envFile    string
	v          *viper.Viper
}

// flagBindings maps persistent flags to the config keys they override.
var flagBindings = map[string]string{
	"base-url":   config.KeyBaseURL,
	"timeout":    config.KeyTimeout,
	"read-only":  config.KeyReadOnly,
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
	"transport":  config.KeyTransport,
	"http-host":  config.KeyHTTPHost,
	"http-port":  config.KeyHTTPPort,
	"telemetry":  config.KeyTelemetry,
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	serveCmd := newServeCommand(opts)
	rootCmd := &cobra.Command{
		Use:   "langflow-mcp",
		Short: "MCP server for managing Langflow flows",
		Long: `langflow-mcp exposes the flows of a Langflow instance as MCP tools:
create, list, inspect, update and delete flows, and browse the component catalog.

Connection settings come from LANGFLOW_BASE_URL and LANGFLOW_API_KEY (or a
.env file). Running without a subcommand starts the server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "optional YAML configuration file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded into the environment when present")
	flags.String("base-url", "", "Langflow base URL (LANGFLOW_BASE_URL)")
	flags.String("timeout", "", "per request timeout, milliseconds or a duration like 45s (LANGFLOW_TIMEOUT)")
	flags.Bool("read-only", false, "expose only tools that do not modify flows (LANGFLOW_READ_ONLY)")
	flags.String("log-level", "", "debug, info, warn or error (LOG_LEVEL)")
	flags.String("log-format", "", "text or json (LOG_FORMAT)")
	flags.String("transport", "", "stdio or http (MCP_TRANSPORT)")
	flags.String("http-host", "", "listen host for the http transport (MCP_HTTP_HOST)")
	flags.Int("http-port", 0, "listen port for the http transport (MCP_HTTP_PORT)")
	flags.Bool("telemetry", true, "log anonymous usage events (LANGFLOW_MCP_TELEMETRY)")

	for flag, key := range flagBindings {
		// Unset flags never override the environment.
		if err := opts.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", flag, err))
		}
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newCallCommand(opts))
	rootCmd.AddCommand(newToolsCommand(opts))
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

// bootstrap loads the configuration, installs the logger and builds the
// server with its Langflow dependencies.
func bootstrap(cmd *cobra.Command, opts *rootOptions) (*server.LangflowMCPServer, *config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		EnvFile:    opts.envFile,
		Viper:      opts.v,
	})
	if err != nil {
		return nil, nil, err
	}

	log := logger.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	client := langflow.NewClient(cfg)
	deps := &tools.ToolDependencies{
		Flows:            langflow.NewFlowManager(client, cfg.BaseURL),
		Components:       langflow.NewComponentCatalog(client),
		Folders:          langflow.NewFolderCatalog(client),
		AnalyticsService: analytics.NewTracker(log, cfg.Telemetry),
	}

	srv, err := server.NewLangflowMCPServer(version, cfg, deps)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create server: %w", err)
	}
	return srv, cfg, nil
}

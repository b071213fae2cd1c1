package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mkd-neo4j/langflow-mcp/docs"
	"github.com/mkd-neo4j/langflow-mcp/internal/analytics"
	"github.com/mkd-neo4j/langflow-mcp/internal/config"
	"github.com/mkd-neo4j/langflow-mcp/internal/tools"
	"golang.org/x/sync/errgroup"
)

const (
	ServerName = "langflow-mcp"

	mcpEndpointPath    = "/mcp"
	healthEndpointPath = "/health"
	shutdownTimeout    = 5 * time.Second
)

// LangflowMCPServer exposes the Langflow flow tools over MCP.
type LangflowMCPServer struct {
	MCPServer *server.MCPServer
	config    *config.Config
	deps      *tools.ToolDependencies
	anService analytics.Service
	version   string
	registry  *Registry

	stdin  io.Reader
	stdout io.Writer
}

// NewLangflowMCPServer creates the MCP server and registers every enabled tool.
func NewLangflowMCPServer(version string, cfg *config.Config, deps *tools.ToolDependencies) (*LangflowMCPServer, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if deps == nil {
		deps = &tools.ToolDependencies{}
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithLogging(),
		server.WithToolHandlerMiddleware(logToolCalls),
		server.WithInstructions(docs.ServerInstructions),
	)

	s := &LangflowMCPServer{
		MCPServer: mcpServer,
		config:    cfg,
		deps:      deps,
		anService: deps.AnalyticsService,
		version:   version,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
	}
	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	return s, nil
}

// Registry returns the name to handler mapping of the enabled tools.
func (s *LangflowMCPServer) Registry() *Registry {
	return s.registry
}

// Start serves MCP on the configured transport until ctx is done or the
// client goes away.
func (s *LangflowMCPServer) Start(ctx context.Context) error {
	s.emitStartupEvent()

	switch s.config.Transport {
	case config.TransportHTTP:
		return s.serveHTTP(ctx)
	default:
		return s.serveStdio(ctx)
	}
}

func (s *LangflowMCPServer) serveStdio(ctx context.Context) error {
	slog.Info("starting MCP server", "transport", config.TransportStdio, "tools", len(s.registry.Names()))
	stdio := server.NewStdioServer(s.MCPServer)
	if err := stdio.Listen(ctx, s.stdin, s.stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio transport failed: %w", err)
	}
	return nil
}

func (s *LangflowMCPServer) serveHTTP(ctx context.Context) error {
	addr := s.config.HTTPAddr()
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.HTTPHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting MCP server", "transport", config.TransportHTTP, "addr", addr, "endpoint", mcpEndpointPath)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http transport failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down MCP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// HTTPHandler serves the streamable HTTP transport and a health probe.
func (s *LangflowMCPServer) HTTPHandler() http.Handler {
	streamable := server.NewStreamableHTTPServer(s.MCPServer,
		server.WithEndpointPath(mcpEndpointPath),
		server.WithStateLess(true),
	)

	mux := http.NewServeMux()
	mux.Handle(mcpEndpointPath, streamable)
	mux.HandleFunc(healthEndpointPath, s.handleHealth)
	return mux
}

func (s *LangflowMCPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"name":    ServerName,
		"version": s.version,
		"tools":   len(s.registry.Names()),
	})
}

func (s *LangflowMCPServer) emitStartupEvent() {
	if s.anService == nil {
		return
	}
	s.anService.EmitEvent(s.anService.NewStartupEvent(analytics.StartupEventInfo{
		Version:   s.version,
		Transport: s.config.Transport,
		ReadOnly:  s.config.ReadOnly,
		ToolCount: len(s.registry.Names()),
	}))
}

func logToolCalls(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := next(ctx, request)
		slog.Debug("tool call finished", "tool", request.Params.Name, "duration", time.Since(start), "error", err)
		return result, err
	}
}

package tools

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mkd-neo4j/langflow-mcp/internal/langflow"
)

// ErrorPrefix marks a text block as a failure. Failures are told apart from
// successes only by this marker, not by the protocol level error flag.
const ErrorPrefix = "Error: "

// ErrorText renders a message as a failure block.
func ErrorText(message string) *mcp.CallToolResult {
	return mcp.NewToolResultText(ErrorPrefix + message)
}

// FailureResult renders a failed remote call. No other field of the result is read.
func FailureResult(tool string, f *langflow.Failure) *mcp.CallToolResult {
	slog.Error("langflow call failed", "tool", tool, "status", f.StatusCode, "error", f.Message)
	return ErrorText(f.Message)
}

// ArgumentErrorResult renders an argument error without calling Langflow.
func ArgumentErrorResult(err *ArgumentError) *mcp.CallToolResult {
	slog.Error("invalid tool arguments", "tool", err.Tool, "argument", err.Argument, "error", err.Reason)
	return ErrorText(err.Error())
}

// BindError wraps a failed argument decode.
func BindError(tool string, err error) *ArgumentError {
	return &ArgumentError{Tool: tool, Reason: fmt.Sprintf("could not decode arguments: %v", err)}
}

// String reads a string field, returning fallback for absent, null or non-string values.
func String(obj map[string]any, key, fallback string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return fallback
}

// Display renders a JSON value the way it reads in prose: null becomes "None".
func Display(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok || v == nil {
		return "None"
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// YesNo renders a truthy JSON value.
func YesNo(v any) string {
	if b, ok := v.(bool); ok && b {
		return "Yes"
	}
	return "No"
}

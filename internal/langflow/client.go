package langflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/mkd-neo4j/langflow-mcp/internal/config"
)

const apiKeyHeader = "x-api-key"

// Client performs single calls against the Langflow REST API.
// Every call gets its own http.Client and transport, so nothing is shared
// between calls apart from the immutable settings below.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewClient creates a client for the configured Langflow instance.
func NewClient(cfg *config.Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		timeout: timeout,
	}
}

// BaseURL returns the Langflow base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call sends one request to baseURL+path. GET carries query, POST and PATCH
// carry body as JSON, DELETE carries neither. Failures of any kind come back
// as a failed Result; Call never retries.
func (c *Client) Call(ctx context.Context, method, path string, body any, query map[string]string) Result {
	var payload io.Reader
	switch method {
	case http.MethodGet, http.MethodDelete:
	case http.MethodPost, http.MethodPatch:
		encoded, err := json.Marshal(body)
		if err != nil {
			return transportFailure(fmt.Errorf("failed to encode request body: %w", err))
		}
		payload = bytes.NewReader(encoded)
	default:
		return transportFailure(fmt.Errorf("unsupported HTTP method: %s", method))
	}

	endpoint := c.baseURL + path
	if method == http.MethodGet && len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			values.Set(k, v)
		}
		endpoint += "?" + values.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return transportFailure(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	httpClient := cleanhttp.DefaultClient()
	defer httpClient.CloseIdleConnections()

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		slog.Debug("langflow request failed", "method", method, "path", path, "error", err)
		return transportFailure(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(fmt.Errorf("failed to read response body: %w", err))
	}

	slog.Debug("langflow request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return remoteFailure(resp.StatusCode, string(raw))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return Success(map[string]any{"status": "success"})
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return transportFailure(fmt.Errorf("invalid JSON response: %w", err))
	}
	return Success(decoded)
}

//go:build integration

package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	langflowImage = "langflowai/langflow:1.1.1"
	langflowPort  = "7860/tcp"
)

// LangflowContainer is a disposable Langflow instance with an API key.
type LangflowContainer struct {
	container testcontainers.Container
	BaseURL   string
	APIKey    string
}

// StartLangflow starts Langflow with auto login enabled and mints an API key
// for the superuser.
func StartLangflow(ctx context.Context) (*LangflowContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        langflowImage,
		ExposedPorts: []string{langflowPort},
		Env: map[string]string{
			"LANGFLOW_AUTO_LOGIN":                  "true",
			"LANGFLOW_DATABASE_URL":                "sqlite:////tmp/langflow.db",
			"LANGFLOW_STORE_ENVIRONMENT_VARIABLES": "false",
		},
		WaitingFor: wait.ForHTTP("/health").
			WithPort(langflowPort).
			WithStartupTimeout(5 * time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start langflow container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, langflowPort)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	lf := &LangflowContainer{
		container: container,
		BaseURL:   fmt.Sprintf("http://%s:%s", host, port.Port()),
	}
	if lf.APIKey, err = lf.createAPIKey(ctx); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	return lf, nil
}

// Terminate stops and removes the container.
func (lf *LangflowContainer) Terminate(ctx context.Context) error {
	return lf.container.Terminate(ctx)
}

func (lf *LangflowContainer) createAPIKey(ctx context.Context) (string, error) {
	client := cleanhttp.DefaultClient()

	var login struct {
		AccessToken string `json:"access_token"`
	}
	if err := lf.doJSON(ctx, client, http.MethodGet, "/api/v1/auto_login", "", nil, &login); err != nil {
		return "", fmt.Errorf("auto login failed: %w", err)
	}

	var key struct {
		APIKey string `json:"api_key"`
	}
	body := map[string]any{"name": "langflow-mcp-integration"}
	if err := lf.doJSON(ctx, client, http.MethodPost, "/api/v1/api_key/", login.AccessToken, body, &key); err != nil {
		return "", fmt.Errorf("api key creation failed: %w", err)
	}
	if key.APIKey == "" {
		return "", fmt.Errorf("api key creation returned an empty key")
	}
	return key.APIKey, nil
}

func (lf *LangflowContainer) doJSON(ctx context.Context, client *http.Client, method, path, token string, body, out any) error {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, lf.BaseURL+path, &payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s returned %d", method, path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

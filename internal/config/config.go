package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"

	DefaultTimeout  = 30 * time.Second
	DefaultHTTPHost = "127.0.0.1"
	DefaultHTTPPort = 8080
)

// Viper keys. The YAML config file uses the same nesting.
const (
	KeyBaseURL   = "langflow.base_url"
	KeyAPIKey    = "langflow.api_key"
	KeyTimeout   = "langflow.timeout"
	KeyReadOnly  = "langflow.read_only"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyTransport = "transport.type"
	KeyHTTPHost  = "transport.http.host"
	KeyHTTPPort  = "transport.http.port"
	KeyTelemetry = "telemetry"
)

var envBindings = map[string]string{
	KeyBaseURL:   "LANGFLOW_BASE_URL",
	KeyAPIKey:    "LANGFLOW_API_KEY",
	KeyTimeout:   "LANGFLOW_TIMEOUT",
	KeyReadOnly:  "LANGFLOW_READ_ONLY",
	KeyLogLevel:  "LOG_LEVEL",
	KeyLogFormat: "LOG_FORMAT",
	KeyTransport: "MCP_TRANSPORT",
	KeyHTTPHost:  "MCP_HTTP_HOST",
	KeyHTTPPort:  "MCP_HTTP_PORT",
	KeyTelemetry: "LANGFLOW_MCP_TELEMETRY",
}

// Config holds the connection settings for the Langflow instance and the
// server's ambient settings. It is built once by Load and never mutated.
type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	ReadOnly  bool
	LogLevel  string
	LogFormat string
	Transport string
	HTTPHost  string
	HTTPPort  int
	Telemetry bool
}

// ConfigError reports a configuration value that prevents the server from starting.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigFile is an optional YAML file. Empty means no file.
	ConfigFile string
	// EnvFile is loaded into the process environment when present. Defaults to ".env".
	EnvFile string
	// Viper carries flag bindings made by the CLI. A fresh instance is used when nil.
	Viper *viper.Viper
}

// Load resolves the configuration from defaults, the optional YAML file, the
// .env file, the environment and bound flags, in increasing precedence.
func Load(opts LoadOptions) (*Config, error) {
	v := opts.Viper
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	if opts.ConfigFile != "" {
		settings, err := readConfigFile(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		if err := v.MergeConfigMap(settings); err != nil {
			return nil, fmt.Errorf("failed to merge config file %s: %w", opts.ConfigFile, err)
		}
		slog.Debug("loaded config file", "path", opts.ConfigFile)
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	timeout, err := parseTimeout(v.GetString(KeyTimeout))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BaseURL:   strings.TrimRight(strings.TrimSpace(v.GetString(KeyBaseURL)), "/"),
		APIKey:    strings.TrimSpace(v.GetString(KeyAPIKey)),
		Timeout:   timeout,
		ReadOnly:  v.GetBool(KeyReadOnly),
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(KeyLogFormat)),
		Transport: strings.ToLower(v.GetString(KeyTransport)),
		HTTPHost:  v.GetString(KeyHTTPHost),
		HTTPPort:  v.GetInt(KeyHTTPPort),
		Telemetry: v.GetBool(KeyTelemetry),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants Load guarantees. The API key never has a default.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return &ConfigError{Field: envBindings[KeyBaseURL], Reason: "is required"}
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &ConfigError{Field: envBindings[KeyBaseURL], Reason: "must be an absolute http(s) URL"}
	}
	if c.APIKey == "" {
		return &ConfigError{Field: envBindings[KeyAPIKey], Reason: "is required"}
	}
	if c.Timeout <= 0 {
		return &ConfigError{Field: envBindings[KeyTimeout], Reason: "must be positive"}
	}
	switch c.Transport {
	case TransportStdio:
	case TransportHTTP:
		if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
			return &ConfigError{Field: envBindings[KeyHTTPPort], Reason: "must be a valid port"}
		}
	default:
		return &ConfigError{Field: envBindings[KeyTransport], Reason: fmt.Sprintf("must be %q or %q", TransportStdio, TransportHTTP)}
	}
	return nil
}

// HTTPAddr is the listen address used by the streamable HTTP transport.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTimeout, DefaultTimeout.String())
	v.SetDefault(KeyReadOnly, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyTransport, TransportStdio)
	v.SetDefault(KeyHTTPHost, DefaultHTTPHost)
	v.SetDefault(KeyHTTPPort, DefaultHTTPPort)
	v.SetDefault(KeyTelemetry, true)
}

// readConfigFile decodes a YAML file after expanding ${VAR} references.
func readConfigFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := make(map[string]any)
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return settings, nil
}

// parseTimeout accepts a Go duration ("45s") or a bare integer in milliseconds ("30000").
func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultTimeout, nil
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, &ConfigError{Field: envBindings[KeyTimeout], Reason: fmt.Sprintf("is not a duration: %q", raw)}
	}
	return d, nil
}
